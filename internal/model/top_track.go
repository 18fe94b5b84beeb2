package model

import (
	"context"
	"time"
)

// TopTrack представляет строку отчета о самых популярных треках
type TopTrack struct {
	Likes     int       `bun:"likes" json:"likes"`
	TrackID   int64     `bun:"track_id" json:"track_id"`
	Title     string    `bun:"title" json:"title"`
	Date      time.Time `bun:"date" json:"date"`
	VenueName string    `bun:"venue_name" json:"venue_name"`
	TourName  string    `bun:"tour_name" json:"tour_name"`
}

// TopTracksRepository определяет интерфейс для отчетов по лайкам
type TopTracksRepository interface {
	TopLikedTracks(ctx context.Context, start, end time.Time, limit int) ([]TopTrack, error)
}

// Package repository содержит репозитории для работы с базой данных.
package repository

import (
	"context"
	"fmt"
	"time"

	"showharvest/internal/model"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// DefaultTopTracksLimit лимит отчета по умолчанию
const DefaultTopTracksLimit = 50

// Лайки считаются по трекам (likable_type = 'Track') и соединяются
// с треками, концертами и турами. Даты передаются строками YYYY-MM-DD:
// PostgreSQL приводит литерал к date, SQLite сравнивает как текст.
const topLikedTracksQuery = `
SELECT lc.likes AS likes,
       t.id AS track_id,
       t.title AS title,
       s.date AS date,
       s.venue_name AS venue_name,
       tours.name AS tour_name
FROM (SELECT count(*) AS likes, likable_id AS id
      FROM likes
      WHERE likable_type = 'Track'
      GROUP BY likable_id) AS lc
INNER JOIN tracks AS t ON lc.id = t.id
INNER JOIN shows AS s ON t.show_id = s.id
INNER JOIN tours ON s.tour_id = tours.id
WHERE s.date BETWEEN ? AND ?
ORDER BY likes DESC, t.id ASC
LIMIT ?`

// TopTracksRepository строит отчеты по лайкам
type TopTracksRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

var _ model.TopTracksRepository = (*TopTracksRepository)(nil)

// NewTopTracksRepository создает новый репозиторий отчетов
func NewTopTracksRepository(db *bun.DB, logger *zap.Logger) *TopTracksRepository {
	return &TopTracksRepository{
		db:     db,
		logger: logger,
	}
}

// TopLikedTracks возвращает самые популярные треки концертов в диапазоне дат.
// limit <= 0 заменяется на DefaultTopTracksLimit.
func (r *TopTracksRepository) TopLikedTracks(ctx context.Context, start, end time.Time, limit int) ([]model.TopTrack, error) {
	if limit <= 0 {
		limit = DefaultTopTracksLimit
	}

	rows := make([]model.TopTrack, 0, limit)
	err := r.db.NewRaw(topLikedTracksQuery,
		start.Format(model.DateLayout),
		end.Format(model.DateLayout),
		limit,
	).Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get top liked tracks: %w", err)
	}

	r.logger.Debug("Top liked tracks loaded",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("limit", limit),
		zap.Int("rows", len(rows)))

	return rows, nil
}

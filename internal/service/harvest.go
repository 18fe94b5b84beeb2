package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"showharvest/internal/harvest"
	"showharvest/internal/model"
	"showharvest/internal/output"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HarvestService собирает треки за диапазон дат
type HarvestService struct {
	tracks   harvest.Fetcher
	setlists SetlistSource
	logger   *zap.Logger
}

// DownloadRequest параметры выгрузки треков в приемник
type DownloadRequest struct {
	Start          time.Time
	End            time.Time
	KnownShowsOnly bool
	Delay          time.Duration
	Sink           output.Sink
}

// DownloadResult итог выгрузки. ResumeFrom и Remaining заполнены, если сбор прерван.
type DownloadResult struct {
	Dates      int
	Tracks     int
	ResumeFrom string
	Remaining  []string
}

// TopRequest параметры рейтинга треков
type TopRequest struct {
	Start    time.Time
	End      time.Time
	Delay    time.Duration
	LikesMin int
	Sink     output.Sink
}

// NewHarvestService создает сервис сбора. setlists нужен только для KnownShowsOnly и Shows.
func NewHarvestService(tracks harvest.Fetcher, setlists SetlistSource, logger *zap.Logger) *HarvestService {
	return &HarvestService{
		tracks:   tracks,
		setlists: setlists,
		logger:   logger,
	}
}

// Dates возвращает даты для обхода по возрастанию: все календарные дни
// диапазона или только дни с известными концертами
func (s *HarvestService) Dates(ctx context.Context, start, end time.Time, knownShowsOnly bool) ([]string, error) {
	if !knownShowsOnly {
		return harvest.EnumerateDates(start, end)
	}

	if _, err := harvest.NewDateRange(start, end); err != nil {
		return nil, err
	}
	if s.setlists == nil {
		return nil, fmt.Errorf("setlist source is not configured")
	}

	dates, err := s.setlists.ShowDates(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch show dates: %w", err)
	}

	// phish.net отдает концерты не по порядку, а продолжение идет с даты сбоя
	dates = slices.Clone(dates)
	slices.Sort(dates)
	return dates, nil
}

// Download собирает треки и пишет их в приемник.
// При сбое уже собранные треки все равно записываются, а в результате
// указывается дата, с которой сбор можно продолжить.
func (s *HarvestService) Download(ctx context.Context, req DownloadRequest) (DownloadResult, error) {
	log := s.logger.With(zap.String("run_id", uuid.NewString()))

	dates, err := s.Dates(ctx, req.Start, req.End, req.KnownShowsOnly)
	if err != nil {
		return DownloadResult{}, err
	}

	log.Info("Starting harvest",
		zap.Time("start", req.Start),
		zap.Time("end", req.End),
		zap.Int("dates", len(dates)),
		zap.Bool("known_shows_only", req.KnownShowsOnly),
		zap.Duration("delay", req.Delay))

	tracks, harvestErr := harvest.New(s.tracks, req.Delay, log).Run(ctx, dates)

	result := DownloadResult{Dates: len(dates), Tracks: len(tracks)}
	var herr *harvest.HarvestError
	if errors.As(harvestErr, &herr) {
		result.ResumeFrom = herr.Date
		result.Remaining = harvest.Remaining(dates, herr.Date)
	} else if harvestErr != nil {
		return result, harvestErr
	}

	if err := req.Sink.Write(tracks); err != nil {
		return result, errors.Join(harvestErr, fmt.Errorf("failed to write output: %w", err))
	}

	if harvestErr != nil {
		log.Warn("Partial results written",
			zap.Int("tracks", len(tracks)),
			zap.String("resume_from", result.ResumeFrom),
			zap.Int("dates_left", len(result.Remaining)))
		return result, harvestErr
	}

	log.Info("Harvest finished", zap.Int("tracks", len(tracks)))
	return result, nil
}

// Top собирает треки и выводит рейтинг по лайкам с порогом LikesMin
func (s *HarvestService) Top(ctx context.Context, req TopRequest) ([]model.Track, error) {
	dates, err := harvest.EnumerateDates(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	tracks, err := harvest.New(s.tracks, req.Delay, s.logger).Run(ctx, dates)
	if err != nil {
		return nil, err
	}

	ranked := harvest.FilterAndRank(tracks, harvest.LikesAtLeast(req.LikesMin), harvest.ByLikes)
	s.logger.Info("Tracks ranked",
		zap.Int("harvested", len(tracks)),
		zap.Int("ranked", len(ranked)),
		zap.Int("likes_min", req.LikesMin))

	if req.Sink != nil {
		if err := req.Sink.Write(ranked); err != nil {
			return ranked, fmt.Errorf("failed to write ranking: %w", err)
		}
	}

	return ranked, nil
}

// Shows возвращает концерты phish.net в диапазоне
func (s *HarvestService) Shows(ctx context.Context, start, end time.Time) ([]model.Show, error) {
	if _, err := harvest.NewDateRange(start, end); err != nil {
		return nil, err
	}
	if s.setlists == nil {
		return nil, fmt.Errorf("setlist source is not configured")
	}
	return s.setlists.Shows(ctx, start, end)
}

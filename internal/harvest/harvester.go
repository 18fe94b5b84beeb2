// Package harvest собирает треки по датам: один удаленный вызов на дату,
// строго последовательно, с фиксированной паузой между вызовами.
package harvest

import (
	"context"
	"errors"
	"time"

	"showharvest/internal/model"

	"go.uber.org/zap"
)

// Fetcher возвращает треки за одну дату.
// Если за дату ничего нет, возвращает ErrNotFound.
type Fetcher interface {
	Fetch(ctx context.Context, date string) ([]model.Track, error)
}

// FetcherFunc позволяет использовать обычную функцию как Fetcher
type FetcherFunc func(ctx context.Context, date string) ([]model.Track, error)

// Fetch вызывает f(ctx, date)
func (f FetcherFunc) Fetch(ctx context.Context, date string) ([]model.Track, error) {
	return f(ctx, date)
}

// Harvester обходит даты и накапливает треки
type Harvester struct {
	fetcher Fetcher
	delay   time.Duration
	logger  *zap.Logger
}

// New создает харвестер. Отрицательная пауза считается нулевой.
func New(fetcher Fetcher, delay time.Duration, logger *zap.Logger) *Harvester {
	if delay < 0 {
		delay = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Harvester{
		fetcher: fetcher,
		delay:   delay,
		logger:  logger,
	}
}

// Harvest собирает треки за даты без логирования
func Harvest(ctx context.Context, dates []string, fetcher Fetcher, delay time.Duration) ([]model.Track, error) {
	return New(fetcher, delay, nil).Run(ctx, dates)
}

// Run вызывает fetcher для каждой даты по порядку.
// ErrNotFound означает ноль треков. Любая другая ошибка сразу прерывает сбор
// и возвращается как *HarvestError с датой и уже собранными треками.
// После каждого вызова, кроме последнего, выдерживается пауза.
func (h *Harvester) Run(ctx context.Context, dates []string) ([]model.Track, error) {
	tracks := make([]model.Track, 0)

	for i, date := range dates {
		found, err := h.fetcher.Fetch(ctx, date)
		switch {
		case errors.Is(err, ErrNotFound):
			h.logger.Debug("No show found", zap.String("date", date))
		case err != nil:
			h.logger.Error("Harvest aborted",
				zap.String("date", date),
				zap.Int("collected", len(tracks)),
				zap.Error(err))
			return tracks, &HarvestError{Date: date, Partial: tracks, Err: err}
		case len(found) == 0:
			h.logger.Debug("Show has no tracks", zap.String("date", date))
		default:
			tracks = append(tracks, found...)
			h.logger.Info("Tracks downloaded",
				zap.String("date", date),
				zap.Int("tracks", len(found)),
				zap.Int("total", len(tracks)))
		}

		if i == len(dates)-1 {
			break
		}
		if err := h.pause(ctx); err != nil {
			return tracks, &HarvestError{Date: dates[i+1], Partial: tracks, Err: err}
		}
	}

	return tracks, nil
}

func (h *Harvester) pause(ctx context.Context) error {
	if h.delay == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(h.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package service

import (
	"context"
	"time"

	"showharvest/internal/model"
)

// SetlistSource определяет интерфейс источника сетлистов
type SetlistSource interface {
	Shows(ctx context.Context, start, end time.Time) ([]model.Show, error)
	ShowDates(ctx context.Context, start, end time.Time) ([]string, error)
}

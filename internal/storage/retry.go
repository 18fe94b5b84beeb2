package storage

import (
	"context"
	"fmt"
	"math"
	"time"

	"showharvest/internal/config"

	"go.uber.org/zap"
)

// WithRetry выполняет функцию с экспоненциальной задержкой между попытками
func WithRetry(ctx context.Context, logger *zap.Logger, cfg config.RetryConfig, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		// Проверяем контекст перед каждой попыткой
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			if attempt > 0 {
				logger.Info("Succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}
		lastErr = err

		if attempt == cfg.MaxRetries {
			break
		}

		delay := backoff(cfg, attempt)
		logger.Warn("Attempt failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", cfg.MaxRetries),
			zap.Duration("delay", delay),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", cfg.MaxRetries+1, lastErr)
}

func backoff(cfg config.RetryConfig, attempt int) time.Duration {
	multiplier := cfg.BackoffMultiplier
	if multiplier < 1 {
		multiplier = 1
	}

	delay := time.Duration(float64(cfg.InitialDelay) * math.Pow(multiplier, float64(attempt)))
	if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}
	return delay
}

// Package health проверяет доступность внешних зависимостей.
package health

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	statusOK        = "ok"

	defaultTimeout = 10 * time.Second
)

// CheckFunc проверяет один компонент
type CheckFunc func(ctx context.Context) error

// Status представляет статус здоровья системы
type Status struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Duration   time.Duration     `json:"duration"`
	Components map[string]string `json:"components,omitempty"`
}

// Healthy сообщает, что все компоненты доступны
func (s Status) Healthy() bool {
	return s.Status == StatusHealthy
}

// Names возвращает имена компонентов по алфавиту
func (s Status) Names() []string {
	names := make([]string, 0, len(s.Components))
	for name := range s.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Checker выполняет зарегистрированные проверки
type Checker struct {
	checks  map[string]CheckFunc
	timeout time.Duration
	logger  *zap.Logger
}

// NewChecker создает проверку с таймаутом на каждый компонент
func NewChecker(timeout time.Duration, logger *zap.Logger) *Checker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Checker{
		checks:  make(map[string]CheckFunc),
		timeout: timeout,
		logger:  logger,
	}
}

// Register добавляет компонент
func (c *Checker) Register(name string, check CheckFunc) {
	c.checks[name] = check
}

// Check проверяет компоненты по очереди
func (c *Checker) Check(ctx context.Context) Status {
	started := time.Now()
	status := Status{
		Status:     StatusHealthy,
		Timestamp:  started,
		Components: make(map[string]string, len(c.checks)),
	}

	for name, check := range c.checks {
		checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := check(checkCtx)
		cancel()

		if err != nil {
			status.Status = StatusUnhealthy
			status.Components[name] = err.Error()
			c.logger.Error("Component check failed", zap.String("component", name), zap.Error(err))
			continue
		}
		status.Components[name] = statusOK
	}

	status.Duration = time.Since(started)
	return status
}

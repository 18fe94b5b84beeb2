// Package storage содержит работу с базой данных.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"showharvest/internal/config"
	"showharvest/internal/model"
	"showharvest/internal/storage/repository"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// Storage представляет подключение к базе архива
type Storage struct {
	db     *bun.DB
	logger *zap.Logger
}

// Open подключается к базе по DSN с повторами.
// postgres:// и postgresql:// открываются через pgdriver,
// sqlite:// и file: через modernc.org/sqlite.
func Open(ctx context.Context, dsn string, retry config.RetryConfig, logger *zap.Logger) (*Storage, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	var db *bun.DB
	err := WithRetry(ctx, logger, retry, func() error {
		candidate, err := newDB(dsn)
		if err != nil {
			return err
		}

		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := candidate.PingContext(pingCtx); err != nil {
			if closeErr := candidate.Close(); closeErr != nil {
				logger.Warn("Failed to close database connection", zap.Error(closeErr))
			}
			return fmt.Errorf("failed to ping database: %w", err)
		}

		db = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Добавляем отладку в режиме разработки
	if logger.Core().Enabled(zap.DebugLevel) {
		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(true),
			bundebug.FromEnv("BUNDEBUG"),
		))
	}

	logger.Info("Connected to database", zap.String("dialect", db.Dialect().Name().String()))

	return &Storage{db: db, logger: logger}, nil
}

func newDB(dsn string) (*bun.DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		sqldb.SetMaxOpenConns(5)
		sqldb.SetMaxIdleConns(2)
		sqldb.SetConnMaxLifetime(5 * time.Minute)
		return bun.NewDB(sqldb, pgdialect.New()), nil

	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		sqldb, err := sql.Open("sqlite", strings.TrimPrefix(dsn, "sqlite://"))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		// одно соединение: in-memory базы не разделяются между соединениями
		sqldb.SetMaxOpenConns(1)
		return bun.NewDB(sqldb, sqlitedialect.New()), nil

	default:
		return nil, fmt.Errorf("unsupported DB_DSN scheme: %q", dsn)
	}
}

// Close закрывает соединение с базой данных
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping выполняет простой запрос к базе
func (s *Storage) Ping(ctx context.Context) error {
	if _, err := s.db.NewRaw("SELECT 1").Exec(ctx); err != nil {
		return fmt.Errorf("database query failed: %w", err)
	}
	return nil
}

// GetDB возвращает подключение к базе данных
func (s *Storage) GetDB() *bun.DB {
	return s.db
}

// GetTopTracksRepository возвращает репозиторий отчетов по лайкам
func (s *Storage) GetTopTracksRepository() model.TopTracksRepository {
	return repository.NewTopTracksRepository(s.db, s.logger)
}

// Package logger содержит настройку логгера.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config настройки логгера
type Config struct {
	Level      string
	Path       string
	AppDataDir string
	// Console поток для консольного вывода, по умолчанию os.Stderr.
	// stdout остается за результатами команд.
	Console io.Writer
}

// New создает новый логгер
func New(cfg Config) *zap.Logger {
	level := ParseLevel(cfg.Level)

	// Настраиваем кодировщик
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	// Консольный вывод
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(console),
		level,
	)

	// Файловый вывод
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   logPath(cfg),
			MaxSize:    100, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}),
		level,
	)

	core := zapcore.NewTee(consoleCore, fileCore)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// ParseLevel переводит строку уровня в zapcore.Level, по умолчанию info
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// logPath выбирает путь к файлу логов: Path, затем AppDataDir, затем ./logs
func logPath(cfg Config) string {
	if cfg.Path != "" {
		return cfg.Path
	}

	if cfg.AppDataDir != "" {
		if err := os.MkdirAll(cfg.AppDataDir, 0o755); err == nil {
			return filepath.Join(cfg.AppDataDir, "showharvest.log")
		}
	}

	if err := os.MkdirAll("logs", 0o755); err == nil {
		return filepath.Join("logs", "showharvest.log")
	}

	return "showharvest.log"
}

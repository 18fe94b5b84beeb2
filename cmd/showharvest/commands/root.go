// Package commands содержит команды CLI.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"showharvest/internal/config"
	"showharvest/internal/harvest"
	"showharvest/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg *config.Config
	log = zap.NewNop()
)

// флаги диапазона общие для download, shows и top
var (
	startFlag string
	endFlag   string
	delayFlag time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "showharvest",
	Short:         "showharvest downloads, ranks and queries live show tracks from phish.in and phish.net.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		log = logger.New(logger.Config{
			Level:      cfg.LogLevel,
			Path:       cfg.LogPath,
			AppDataDir: cfg.AppDataDir,
		})
		return nil
	},
}

// ExecuteContext выполняет команду и возвращает код выхода
func ExecuteContext(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	_ = log.Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&startFlag, "start", "", "first date of the range, YYYY-MM-DD (default HARVEST_START)")
	cmd.Flags().StringVar(&endFlag, "end", "", "last date of the range, YYYY-MM-DD (default HARVEST_END)")
	cmd.Flags().DurationVar(&delayFlag, "delay", -1, "pause between requests (default REQUEST_DELAY)")
}

// dateRange возвращает диапазон из флагов с откатом на конфигурацию
func dateRange() (time.Time, time.Time, error) {
	start, end := cfg.Harvest.Start, cfg.Harvest.End
	if startFlag != "" {
		start = startFlag
	}
	if endFlag != "" {
		end = endFlag
	}

	s, err := harvest.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := harvest.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	// границы могли прийти из разных источников: флаг и окружение
	if _, err := harvest.NewDateRange(s, e); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}

func requestDelay() time.Duration {
	if delayFlag >= 0 {
		return delayFlag
	}
	return cfg.Harvest.RequestDelay
}

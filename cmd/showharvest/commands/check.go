package commands

import (
	"context"
	"errors"
	"time"

	"showharvest/internal/service"
	"showharvest/internal/storage"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	checkCmd.Flags().StringVar(&dsnFlag, "dsn", "", "also check this database (default DB_DSN)")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [--dsn postgres://localhost/phishin]",
	Short: "Checks that phish.in, phish.net and the database are reachable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		services := service.NewServices(cfg, log)

		dsn := cfg.DatabaseURL
		if dsnFlag != "" {
			dsn = dsnFlag
		}
		if dsn != "" {
			// без повторов: проверка должна быстро показать состояние
			retry := cfg.DBRetryConfig
			retry.MaxRetries = 0

			db, err := storage.Open(cmd.Context(), dsn, retry, log)
			if err != nil {
				log.Warn("Database is unreachable", zap.Error(err))
				services.Health.Register("database", func(_ context.Context) error { return err })
			} else {
				defer func() { _ = db.Close() }()
				services.Health.Register("database", db.Ping)
			}
		}

		status := services.Health.Check(cmd.Context())

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Component", "Status"})
		for _, name := range status.Names() {
			t.AppendRow(table.Row{name, status.Components[name]})
		}
		t.AppendFooter(table.Row{status.Status, status.Duration.Round(time.Millisecond)})
		t.SetStyle(table.StyleRounded)
		t.Render()

		if !status.Healthy() {
			return errors.New("some components are unreachable")
		}
		return nil
	},
}

package commands

import (
	"showharvest/internal/output"
	"showharvest/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dsnFlag   string
	limitFlag int
)

func init() {
	addRangeFlags(queryCmd)
	queryCmd.Flags().StringVar(&dsnFlag, "dsn", "", "database to query, postgres:// or sqlite:// (default DB_DSN)")
	queryCmd.Flags().IntVar(&limitFlag, "limit", 10, "number of tracks to return")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query [--dsn postgres://localhost/phishin] [--limit N]",
	Short: "Prints the most liked tracks in a date range from a phish.in database copy.",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := dateRange()
		if err != nil {
			return err
		}

		dsn := cfg.DatabaseURL
		if dsnFlag != "" {
			dsn = dsnFlag
		}

		db, err := storage.Open(cmd.Context(), dsn, cfg.DBRetryConfig, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Warn("Failed to close database", zap.Error(err))
			}
		}()

		rows, err := db.GetTopTracksRepository().TopLikedTracks(cmd.Context(), start, end, limitFlag)
		if err != nil {
			return err
		}

		output.WriteTopTracks(cmd.OutOrStdout(), rows)
		return nil
	},
}

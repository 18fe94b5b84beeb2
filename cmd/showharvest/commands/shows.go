package commands

import (
	"showharvest/internal/service"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	addRangeFlags(showsCmd)
	rootCmd.AddCommand(showsCmd)
}

var showsCmd = &cobra.Command{
	Use:   "shows [--start YYYY-MM-DD] [--end YYYY-MM-DD]",
	Short: "Prints the shows phish.net knows about in a date range.",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := dateRange()
		if err != nil {
			return err
		}

		services := service.NewServices(cfg, log)
		shows, err := services.Harvest.Shows(cmd.Context(), start, end)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Date", "Venue", "Location", "Songs"})

		for _, s := range shows {
			songs, err := s.Songs()
			if err != nil {
				log.Warn("Failed to parse setlist", zap.String("date", s.ShowDate), zap.Error(err))
			}
			t.AppendRow(table.Row{s.ShowDate, s.VenueName(), s.Location, len(songs)})
		}

		t.AppendFooter(table.Row{"", "", "Shows", len(shows)})
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	},
}

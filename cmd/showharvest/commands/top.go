package commands

import (
	"fmt"

	"showharvest/internal/output"
	"showharvest/internal/service"

	"github.com/spf13/cobra"
)

var (
	minLikesFlag int
	styleFlag    string
)

func init() {
	addRangeFlags(topCmd)
	topCmd.Flags().IntVar(&minLikesFlag, "min-likes", -1, "only rank tracks with at least this many likes (default LIKES_MIN)")
	topCmd.Flags().StringVar(&styleFlag, "style", output.StyleTable, "output style: table or text")
	rootCmd.AddCommand(topCmd)
}

var topCmd = &cobra.Command{
	Use:   "top [--start YYYY-MM-DD] [--end YYYY-MM-DD] [--min-likes N]",
	Short: "Ranks the tracks of a date range by likes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := dateRange()
		if err != nil {
			return err
		}

		likesMin := cfg.Harvest.LikesMin
		if minLikesFlag >= 0 {
			likesMin = minLikesFlag
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Tracks from %s to %s with likes >= %d:\n",
			start.Format("2006-01-02"), end.Format("2006-01-02"), likesMin)

		services := service.NewServices(cfg, log)
		_, err = services.Harvest.Top(cmd.Context(), service.TopRequest{
			Start:    start,
			End:      end,
			Delay:    requestDelay(),
			LikesMin: likesMin,
			Sink:     &output.Console{Writer: cmd.OutOrStdout(), Style: styleFlag},
		})
		return err
	},
}

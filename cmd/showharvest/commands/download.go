package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"showharvest/internal/harvest"
	"showharvest/internal/model"
	"showharvest/internal/output"
	"showharvest/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outFlag        string
	appendFlag     bool
	knownShowsFlag bool
)

func init() {
	addRangeFlags(downloadCmd)
	downloadCmd.Flags().StringVarP(&outFlag, "out", "o", "", "JSON file to write tracks to (default OUTPUT_FILE)")
	downloadCmd.Flags().BoolVar(&appendFlag, "append", false, "append to the tracks already in the output file")
	downloadCmd.Flags().BoolVar(&knownShowsFlag, "known-shows", false, "only request dates with a show listed on phish.net")
	rootCmd.AddCommand(downloadCmd)
}

var downloadCmd = &cobra.Command{
	Use:   "download [--start YYYY-MM-DD] [--end YYYY-MM-DD] [--out tracks.json]",
	Short: "Downloads every track in a date range from phish.in into a JSON file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := dateRange()
		if err != nil {
			return err
		}

		path := cfg.Harvest.OutputFile
		if outFlag != "" {
			path = outFlag
		}
		knownShows := knownShowsFlag || cfg.Harvest.KnownShowsOnly

		services := service.NewServices(cfg, log)
		result, err := services.Harvest.Download(cmd.Context(), service.DownloadRequest{
			Start:          start,
			End:            end,
			KnownShowsOnly: knownShows,
			Delay:          requestDelay(),
			Sink:           &output.JSONFile{Path: path, Append: appendFlag || cfg.Harvest.AppendOutput},
		})

		var herr *harvest.HarvestError
		if errors.As(err, &herr) {
			log.Error("Download interrupted",
				zap.String("failed_date", herr.Date),
				zap.Int("saved_tracks", len(herr.Partial)),
				zap.Int("dates_left", len(result.Remaining)),
				zap.String("output", path))

			resume := resumeArgs{
				start:      result.ResumeFrom,
				end:        end,
				out:        path,
				knownShows: knownShows,
			}
			if cmd.Flags().Changed("delay") {
				resume.delay = requestDelay()
				resume.delaySet = true
			}
			return fmt.Errorf("%w\n%d dates left, resume with: %s", err, len(result.Remaining), resume)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Done! %d tracks from %d dates saved to %s\n", result.Tracks, result.Dates, path)
		return nil
	},
}

// resumeArgs команда, которая продолжает прерванную выгрузку в том же режиме
type resumeArgs struct {
	start      string
	end        time.Time
	out        string
	knownShows bool
	delay      time.Duration
	delaySet   bool
}

func (r resumeArgs) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "showharvest download --start %s --end %s --out %s --append",
		r.start, r.end.Format(model.DateLayout), r.out)
	if r.knownShows {
		b.WriteString(" --known-shows")
	}
	if r.delaySet {
		fmt.Fprintf(&b, " --delay %s", r.delay)
	}
	return b.String()
}

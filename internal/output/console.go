package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"showharvest/internal/model"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Стили консольного вывода
const (
	StyleTable = "table"
	StyleText  = "text"
)

// Console печатает рейтинг треков
type Console struct {
	Writer io.Writer
	Style  string
}

var _ Sink = (*Console)(nil)

var printer = message.NewPrinter(language.English)

// Write печатает треки в порядке среза, нумерация с 1
func (c *Console) Write(tracks []model.Track) error {
	w := c.Writer
	if w == nil {
		w = os.Stdout
	}

	switch c.Style {
	case StyleText:
		return writeText(w, tracks)
	case StyleTable, "":
		return writeTable(w, tracks)
	default:
		return fmt.Errorf("unknown console style %q", c.Style)
	}
}

func writeText(w io.Writer, tracks []model.Track) error {
	for i, t := range tracks {
		if _, err := fmt.Fprintf(w, "%d. %s (%s) - %s likes\n",
			i+1, t.Title(), t.ShowDate(), formatLikes(t)); err != nil {
			return err
		}

		// mp3_url бывает не у всех треков
		if url := t.MP3URL(); url != "" {
			if _, err := fmt.Fprintf(w, "   MP3: %s\n", url); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTable(w io.Writer, tracks []model.Track) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"#", "Title", "Date", "Likes", "MP3"})

	for i, t := range tracks {
		tw.AppendRow(table.Row{i + 1, t.Title(), t.ShowDate(), formatLikes(t), t.MP3URL()})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Likes", Align: text.AlignRight},
	})
	tw.SetStyle(table.StyleRounded)
	tw.Render()
	return nil
}

// WriteTopTracks печатает строки отчета из базы
func WriteTopTracks(w io.Writer, rows []model.TopTrack) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Likes", "Track ID", "Title", "Date", "Venue", "Tour"})

	for _, r := range rows {
		tw.AppendRow(table.Row{
			printer.Sprintf("%d", r.Likes),
			strconv.FormatInt(r.TrackID, 10),
			r.Title,
			r.Date.Format(model.DateLayout),
			r.VenueName,
			r.TourName,
		})
	}

	tw.SetStyle(table.StyleRounded)
	tw.Render()
}

func formatLikes(t model.Track) string {
	n, ok := t.LikesCount()
	if !ok {
		return "-"
	}
	return printer.Sprintf("%d", n)
}

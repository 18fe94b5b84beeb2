package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"showharvest/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedTracks() []model.Track {
	return []model.Track{
		{"title": "Tweezer", "show_date": "1997-11-22", "likes_count": 1234, "mp3_url": "https://phish.in/tweezer.mp3"},
		{"title": "Reba", "show_date": "1997-11-23", "likes_count": 10},
	}
}

func TestConsole_Text(t *testing.T) {
	var buf bytes.Buffer
	sink := &Console{Writer: &buf, Style: StyleText}

	require.NoError(t, sink.Write(rankedTracks()))

	expected := "1. Tweezer (1997-11-22) - 1,234 likes\n" +
		"   MP3: https://phish.in/tweezer.mp3\n" +
		"2. Reba (1997-11-23) - 10 likes\n"
	assert.Equal(t, expected, buf.String())
}

func TestConsole_TextWithoutMP3(t *testing.T) {
	var buf bytes.Buffer
	sink := &Console{Writer: &buf, Style: StyleText}

	require.NoError(t, sink.Write([]model.Track{{"title": "Fee", "show_date": "1989-08-01"}}))

	assert.Equal(t, "1. Fee (1989-08-01) - - likes\n", buf.String())
	assert.NotContains(t, buf.String(), "MP3")
}

func TestConsole_Table(t *testing.T) {
	var buf bytes.Buffer
	sink := &Console{Writer: &buf}

	require.NoError(t, sink.Write(rankedTracks()))

	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Tweezer")
	assert.Contains(t, out, "1,234")
	assert.Less(t, strings.Index(out, "Tweezer"), strings.Index(out, "Reba"))
}

func TestConsole_UnknownStyle(t *testing.T) {
	sink := &Console{Writer: &bytes.Buffer{}, Style: "html"}
	assert.Error(t, sink.Write(rankedTracks()))
}

func TestWriteTopTracks(t *testing.T) {
	var buf bytes.Buffer
	WriteTopTracks(&buf, []model.TopTrack{{
		Likes:     2048,
		TrackID:   42,
		Title:     "Ghost",
		Date:      time.Date(1997, 12, 6, 0, 0, 0, 0, time.UTC),
		VenueName: "Auburn Hills",
		TourName:  "Fall Tour 1997",
	}})

	out := buf.String()
	assert.Contains(t, out, "2,048")
	assert.Contains(t, out, "1997-12-06")
	assert.Contains(t, out, "Fall Tour 1997")
}

package harvest

import (
	"context"
	"errors"
	"testing"
	"time"

	"showharvest/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedFetcher возвращает заранее заданные ответы и запоминает вызовы
type scriptedFetcher struct {
	tracks map[string][]model.Track
	errs   map[string]error
	calls  []string
}

func (f *scriptedFetcher) Fetch(_ context.Context, date string) ([]model.Track, error) {
	f.calls = append(f.calls, date)
	if err, ok := f.errs[date]; ok {
		return nil, err
	}
	return f.tracks[date], nil
}

func track(title, date string, likes int) model.Track {
	return model.Track{
		model.FieldTitle:      title,
		model.FieldShowDate:   date,
		model.FieldLikesCount: likes,
	}
}

func TestHarvest_EmptyResults(t *testing.T) {
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	fetcher := &scriptedFetcher{}

	tracks, err := Harvest(context.Background(), dates, fetcher, 0)
	require.NoError(t, err)

	assert.Empty(t, tracks)
	assert.NotNil(t, tracks)
	assert.Equal(t, dates, fetcher.calls)
}

func TestHarvest_NotFoundIsSkipped(t *testing.T) {
	want := track("Wilson", "1983-12-04", 3)
	fetcher := &scriptedFetcher{
		tracks: map[string][]model.Track{"1983-12-04": {want}},
		errs:   map[string]error{"1983-12-03": ErrNotFound},
	}

	tracks, err := Harvest(context.Background(), []string{"1983-12-03", "1983-12-04"}, fetcher, 0)
	require.NoError(t, err)
	assert.Equal(t, []model.Track{want}, tracks)
}

func TestHarvest_WrappedNotFoundIsSkipped(t *testing.T) {
	fetcher := &scriptedFetcher{
		errs: map[string]error{"1983-12-03": errors.Join(ErrNotFound, errors.New("404"))},
	}

	tracks, err := Harvest(context.Background(), []string{"1983-12-03"}, fetcher, 0)
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestHarvest_PreservesOrder(t *testing.T) {
	a1 := track("Fee", "1989-08-01", 1)
	a2 := track("Bathtub Gin", "1989-08-01", 2)
	b1 := track("Reba", "1989-08-03", 3)
	fetcher := &scriptedFetcher{
		tracks: map[string][]model.Track{
			"1989-08-01": {a1, a2},
			"1989-08-03": {b1},
		},
	}

	tracks, err := Harvest(context.Background(), []string{"1989-08-01", "1989-08-02", "1989-08-03"}, fetcher, 0)
	require.NoError(t, err)
	assert.Equal(t, []model.Track{a1, a2, b1}, tracks)
}

func TestHarvest_FailFastKeepsPartial(t *testing.T) {
	dates := []string{"1997-11-22", "1997-11-23", "1997-11-24", "1997-11-25", "1997-11-26"}
	boom := &RemoteFailure{URL: "https://phish.in/api/v2/shows/1997-11-24", Status: 500}
	fetcher := &scriptedFetcher{
		tracks: map[string][]model.Track{
			"1997-11-22": {track("Tweezer", "1997-11-22", 40)},
			"1997-11-23": {track("Halley's Comet", "1997-11-23", 12), track("Bathtub Gin", "1997-11-23", 7)},
			"1997-11-25": {track("Never", "1997-11-25", 1)},
		},
		errs: map[string]error{"1997-11-24": boom},
	}

	tracks, err := Harvest(context.Background(), dates, fetcher, 0)
	require.Error(t, err)

	var herr *HarvestError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "1997-11-24", herr.Date)
	assert.Len(t, herr.Partial, 3)
	assert.Equal(t, herr.Partial, tracks)
	assert.ErrorIs(t, err, boom)
	assert.True(t, IsRemoteFailure(err))

	// после сбоя вызовов больше нет
	assert.Equal(t, dates[:3], fetcher.calls)
	assert.Equal(t, dates[2:], Remaining(dates, herr.Date))
}

func TestHarvest_DoesNotMutateTracks(t *testing.T) {
	original := track("Harry Hood", "1995-12-31", 100)
	fetcher := &scriptedFetcher{
		tracks: map[string][]model.Track{"1995-12-31": {original}},
	}

	tracks, err := New(fetcher, 0, zap.NewNop()).Run(context.Background(), []string{"1995-12-31"})
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, track("Harry Hood", "1995-12-31", 100), tracks[0])
}

func TestHarvest_Delay(t *testing.T) {
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"}
	delay := 20 * time.Millisecond

	started := time.Now()
	_, err := Harvest(context.Background(), dates, &scriptedFetcher{}, delay)
	elapsed := time.Since(started)

	require.NoError(t, err)
	if elapsed < time.Duration(len(dates)-1)*delay {
		t.Errorf("Expected at least %v, got %v", time.Duration(len(dates)-1)*delay, elapsed)
	}
}

func TestHarvest_NegativeDelay(t *testing.T) {
	h := New(&scriptedFetcher{}, -time.Second, nil)
	assert.Equal(t, time.Duration(0), h.delay)
}

func TestHarvest_ContextCancelledDuringPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetcher := FetcherFunc(func(_ context.Context, date string) ([]model.Track, error) {
		cancel()
		return []model.Track{track("Slave", date, 5)}, nil
	})

	tracks, err := Harvest(ctx, []string{"2024-01-01", "2024-01-02"}, fetcher, time.Hour)

	var herr *HarvestError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "2024-01-02", herr.Date)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, tracks, 1)
}

func TestHarvest_NoDates(t *testing.T) {
	fetcher := &scriptedFetcher{}
	tracks, err := Harvest(context.Background(), nil, fetcher, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, tracks)
	assert.Empty(t, fetcher.calls)
}

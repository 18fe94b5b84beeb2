package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE tours (id INTEGER PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE shows (id INTEGER PRIMARY KEY, date DATE NOT NULL, venue_name TEXT NOT NULL, tour_id INTEGER NOT NULL);
CREATE TABLE tracks (id INTEGER PRIMARY KEY, show_id INTEGER NOT NULL, title TEXT NOT NULL);
CREATE TABLE likes (id INTEGER PRIMARY KEY, likable_type TEXT NOT NULL, likable_id INTEGER NOT NULL);

INSERT INTO tours (id, name) VALUES (1, 'Fall Tour 1997'), (2, 'New Year''s Run 2024');
INSERT INTO shows (id, date, venue_name, tour_id) VALUES
	(10, '1997-11-22', 'Hampton Coliseum', 1),
	(11, '1997-12-06', 'The Palace of Auburn Hills', 1),
	(12, '2024-12-31', 'Madison Square Garden', 2);
INSERT INTO tracks (id, show_id, title) VALUES
	(100, 10, 'Tweezer'),
	(101, 10, 'Halley''s Comet'),
	(102, 11, 'Ghost'),
	(103, 12, 'Sand'),
	(104, 11, 'Wolfman''s Brother');
INSERT INTO likes (likable_type, likable_id) VALUES
	('Track', 100), ('Track', 100), ('Track', 100),
	('Track', 101),
	('Track', 102), ('Track', 102),
	('Track', 103), ('Track', 103), ('Track', 103), ('Track', 103),
	('Show', 100), ('Show', 100), ('Show', 100), ('Show', 101);
`

func newTestRepository(t *testing.T) *TopTracksRepository {
	t.Helper()

	sqldb, err := sql.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(context.Background(), schema)
	require.NoError(t, err)

	return NewTopTracksRepository(db, zap.NewNop())
}

func date(value string) time.Time {
	d, _ := time.Parse("2006-01-02", value)
	return d
}

func TestTopLikedTracks(t *testing.T) {
	repo := newTestRepository(t)

	rows, err := repo.TopLikedTracks(context.Background(), date("1997-11-22"), date("1997-12-31"), 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Tweezer", rows[0].Title)
	assert.Equal(t, 3, rows[0].Likes)
	assert.Equal(t, int64(100), rows[0].TrackID)
	assert.Equal(t, "Hampton Coliseum", rows[0].VenueName)
	assert.Equal(t, "Fall Tour 1997", rows[0].TourName)
	assert.Equal(t, "1997-11-22", rows[0].Date.Format("2006-01-02"))

	assert.Equal(t, "Ghost", rows[1].Title)
	assert.Equal(t, 2, rows[1].Likes)
	assert.Equal(t, "Halley's Comet", rows[2].Title)
}

func TestTopLikedTracks_Limit(t *testing.T) {
	repo := newTestRepository(t)

	rows, err := repo.TopLikedTracks(context.Background(), date("1983-12-02"), date("2025-01-01"), 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Sand", rows[0].Title)
	assert.Equal(t, "Tweezer", rows[1].Title)
}

func TestTopLikedTracks_DefaultLimit(t *testing.T) {
	repo := newTestRepository(t)

	rows, err := repo.TopLikedTracks(context.Background(), date("1983-12-02"), date("2025-01-01"), 0)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestTopLikedTracks_ParametersAreBound(t *testing.T) {
	repo := newTestRepository(t)

	rows, err := repo.TopLikedTracks(context.Background(), date("2024-12-31"), date("2024-12-31"), 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Sand", rows[0].Title)
	assert.Equal(t, 4, rows[0].Likes)
}

package harvest

import (
	"testing"

	"showharvest/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFilterAndRank_ThresholdAndStability(t *testing.T) {
	tracks := []model.Track{
		track("a", "1997-11-22", 3),
		track("b", "1997-11-22", 10),
		track("c", "1997-11-23", 10),
		track("d", "1997-11-23", 1),
	}

	ranked := FilterAndRank(tracks, LikesAtLeast(5), ByLikes)

	assert.Equal(t, []model.Track{tracks[1], tracks[2]}, ranked)
}

func TestFilterAndRank_SortsDescending(t *testing.T) {
	tracks := []model.Track{
		track("low", "1997-12-01", 1),
		track("high", "1997-12-02", 50),
		track("mid", "1997-12-03", 20),
		track("mid2", "1997-12-04", 20),
	}

	ranked := FilterAndRank(tracks, nil, ByLikes)

	titles := make([]string, 0, len(ranked))
	for _, tr := range ranked {
		titles = append(titles, tr.Title())
	}
	assert.Equal(t, []string{"high", "mid", "mid2", "low"}, titles)

	// исходный срез не изменен
	assert.Equal(t, "low", tracks[0].Title())
}

func TestFilterAndRank_MissingLikes(t *testing.T) {
	missing := model.Track{model.FieldTitle: "no likes"}
	zero := track("zero", "1997-12-05", 0)

	assert.Empty(t, FilterAndRank([]model.Track{missing}, LikesAtLeast(0), ByLikes))
	assert.Equal(t, []model.Track{zero}, FilterAndRank([]model.Track{missing, zero}, LikesAtLeast(0), ByLikes))
	assert.Equal(t, 0, ByLikes(missing))
}

func TestFilterAndRank_Empty(t *testing.T) {
	ranked := FilterAndRank(nil, LikesAtLeast(1), ByLikes)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

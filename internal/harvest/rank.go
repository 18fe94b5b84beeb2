package harvest

import (
	"cmp"
	"slices"

	"showharvest/internal/model"
)

// Predicate отбирает треки
type Predicate func(model.Track) bool

// ScoreFunc возвращает числовую оценку трека для сортировки
type ScoreFunc func(model.Track) int

// FilterAndRank оставляет треки, удовлетворяющие keep, и сортирует их
// по убыванию score. При равных оценках исходный порядок сохраняется.
// Входной срез не изменяется. nil keep оставляет все треки.
func FilterAndRank(tracks []model.Track, keep Predicate, score ScoreFunc) []model.Track {
	selected := make([]model.Track, 0, len(tracks))
	for _, t := range tracks {
		if keep == nil || keep(t) {
			selected = append(selected, t)
		}
	}

	if score != nil {
		slices.SortStableFunc(selected, func(a, b model.Track) int {
			return cmp.Compare(score(b), score(a))
		})
	}

	return selected
}

// LikesAtLeast отбирает треки с likes_count >= min.
// Трек без likes_count не проходит фильтр.
func LikesAtLeast(min int) Predicate {
	return func(t model.Track) bool {
		n, ok := t.LikesCount()
		return ok && n >= min
	}
}

// ByLikes оценивает трек по likes_count, отсутствующее поле дает 0
func ByLikes(t model.Track) int {
	n, _ := t.LikesCount()
	return n
}

package harvest

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"showharvest/internal/model"
)

// DateRange представляет включительный диапазон календарных дат.
// Последовательность дат можно обходить сколько угодно раз.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange создает диапазон. Время суток и часовой пояс отбрасываются.
func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := calendarDay(start), calendarDay(end)
	if s.After(e) {
		return DateRange{}, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidRange, s.Format(model.DateLayout), e.Format(model.DateLayout))
	}
	return DateRange{start: s, end: e}, nil
}

// Len возвращает количество дней в диапазоне
func (r DateRange) Len() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

// All возвращает даты диапазона по возрастанию в формате YYYY-MM-DD
func (r DateRange) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
			if !yield(d.Format(model.DateLayout)) {
				return
			}
		}
	}
}

// Strings возвращает все даты диапазона списком
func (r DateRange) Strings() []string {
	dates := make([]string, 0, r.Len())
	return slices.AppendSeq(dates, r.All())
}

// EnumerateDates возвращает каждую дату от start до end включительно
func EnumerateDates(start, end time.Time) ([]string, error) {
	r, err := NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return r.Strings(), nil
}

// EnumerateDateStrings то же, что EnumerateDates, но принимает даты строками
func EnumerateDateStrings(start, end string) ([]string, error) {
	s, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	return EnumerateDates(s, e)
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(model.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return date, nil
}

// Remaining возвращает даты начиная с failed включительно.
// Используется для продолжения сбора после HarvestError. nil, если даты нет в списке.
func Remaining(dates []string, failed string) []string {
	idx := slices.Index(dates, failed)
	if idx < 0 {
		return nil
	}
	return slices.Clone(dates[idx:])
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package harvest

import (
	"errors"
	"fmt"

	"showharvest/internal/model"
)

// Стандартные ошибки харвестера
var (
	// ErrInvalidRange начало диапазона позже конца
	ErrInvalidRange = errors.New("invalid date range")

	// ErrNotFound источник сообщил, что за дату данных нет. Это не сбой: дата пропускается.
	ErrNotFound = errors.New("not found")
)

// RemoteFailure представляет сбой удаленного вызова: транспорт, статус или тело ответа
type RemoteFailure struct {
	URL    string
	Status int
	Err    error
}

func (e *RemoteFailure) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("request %s failed with status %d: %v", e.URL, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("request %s failed with status %d", e.URL, e.Status)
	default:
		return fmt.Sprintf("request %s failed: %v", e.URL, e.Err)
	}
}

func (e *RemoteFailure) Unwrap() error {
	return e.Err
}

// HarvestError прерывает сбор. Содержит дату, на которой произошел сбой,
// и все треки, собранные до нее.
type HarvestError struct {
	Date    string
	Partial []model.Track
	Err     error
}

func (e *HarvestError) Error() string {
	return fmt.Sprintf("harvest stopped at %s with %d tracks collected: %v", e.Date, len(e.Partial), e.Err)
}

func (e *HarvestError) Unwrap() error {
	return e.Err
}

// IsRemoteFailure проверяет, вызвана ли ошибка сбоем удаленного вызова
func IsRemoteFailure(err error) bool {
	var rf *RemoteFailure
	return errors.As(err, &rf)
}

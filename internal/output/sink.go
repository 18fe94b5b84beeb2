// Package output содержит приемники результатов сбора: JSON файл и консоль.
package output

import "showharvest/internal/model"

// Sink принимает итоговую последовательность треков
type Sink interface {
	Write(tracks []model.Track) error
}

// Package model содержит модели данных.
//
// Группа: ENTITIES - Основные сущности
// Содержит: Track, Show, TopTrack, TopTracksRepository
package model

import (
	"fmt"
	"math"
)

// Поля трека, которые используются при фильтрации и выводе
const (
	FieldTitle      = "title"
	FieldShowDate   = "show_date"
	FieldLikesCount = "likes_count"
	FieldMP3URL     = "mp3_url"
)

// Track представляет трек в том виде, в котором его вернул архив.
// Запись непрозрачна: все поля сохраняются как есть и попадают в вывод без изменений.
type Track map[string]any

// Title возвращает название трека
func (t Track) Title() string {
	return t.stringField(FieldTitle)
}

// ShowDate возвращает дату концерта (YYYY-MM-DD)
func (t Track) ShowDate() string {
	return t.stringField(FieldShowDate)
}

// MP3URL возвращает ссылку на mp3, пустая строка если поля нет
func (t Track) MP3URL() string {
	return t.stringField(FieldMP3URL)
}

// LikesCount возвращает счетчик лайков.
// Второе значение false, если поле отсутствует или не является числом.
func (t Track) LikesCount() (int, bool) {
	raw, ok := t[FieldLikesCount]
	if !ok || raw == nil {
		return 0, false
	}

	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case interface{ Int64() (int64, error) }:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		if f, ok := v.(interface{ Float64() (float64, error) }); ok {
			if n, err := f.Float64(); err == nil {
				return int(n), true
			}
		}
	}

	return 0, false
}

func (t Track) stringField(key string) string {
	switch v := t[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DateLayout формат дат, который используют оба API
const DateLayout = "2006-01-02"

// Show представляет запись сетлиста phish.net
type Show struct {
	ShowDate    string `json:"showdate"`
	Venue       string `json:"venue"`
	Location    string `json:"location"`
	SetlistData string `json:"setlistdata"`
}

// Date разбирает дату концерта
func (s Show) Date() (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(s.ShowDate))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid showdate %q: %w", s.ShowDate, err)
	}
	return date, nil
}

// VenueName возвращает название площадки без HTML-разметки
func (s Show) VenueName() string {
	if !strings.Contains(s.Venue, "<") {
		return strings.TrimSpace(s.Venue)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s.Venue))
	if err != nil {
		return strings.TrimSpace(s.Venue)
	}
	return strings.TrimSpace(doc.Text())
}

// Songs извлекает названия песен из HTML сетлиста.
// Каждая песня в setlistdata оформлена ссылкой на страницу песни.
func (s Show) Songs() ([]string, error) {
	if strings.TrimSpace(s.SetlistData) == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s.SetlistData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse setlist HTML: %w", err)
	}

	var songs []string
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		if title := strings.TrimSpace(sel.Text()); title != "" {
			songs = append(songs, title)
		}
	})

	return songs, nil
}

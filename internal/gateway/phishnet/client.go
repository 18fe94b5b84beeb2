// Package phishnet реализует клиент для API сетлистов phish.net (v3).
package phishnet

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"showharvest/internal/harvest"
	"showharvest/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const setlistsPath = "/v3/setlists"

// Client получает список концертов
type Client struct {
	http   *resty.Client
	apiKey string
	logger *zap.Logger
}

type setlistsResponse struct {
	Data []model.Show `json:"data"`
}

// NewClient создает клиент. apiKey необязателен.
func NewClient(baseURL, apiKey string, httpClient *http.Client, userAgent string, logger *zap.Logger) *Client {
	client := resty.NewWithClient(httpClient).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &Client{
		http:   client,
		apiKey: apiKey,
		logger: logger,
	}
}

// Setlists возвращает все сетлисты одним запросом
func (c *Client) Setlists(ctx context.Context) ([]model.Show, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("format", "json").
		SetQueryParam("limit", "all")
	if c.apiKey != "" {
		req.SetQueryParam("apikey", c.apiKey)
	}

	res, err := req.Get(setlistsPath)
	if err != nil {
		return nil, &harvest.RemoteFailure{URL: c.http.BaseURL + setlistsPath, Err: err}
	}
	if !res.IsSuccess() {
		return nil, &harvest.RemoteFailure{URL: c.http.BaseURL + setlistsPath, Status: res.StatusCode()}
	}

	var payload setlistsResponse
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return nil, &harvest.RemoteFailure{
			URL:    c.http.BaseURL + setlistsPath,
			Status: res.StatusCode(),
			Err:    fmt.Errorf("failed to decode setlists response: %w", err),
		}
	}

	c.logger.Debug("Setlists received",
		zap.Int("shows", len(payload.Data)),
		zap.Duration("duration", res.Time()))

	return payload.Data, nil
}

// Shows возвращает концерты с датой в диапазоне [start, end] в порядке ответа.
// Записи без даты или с некорректной датой пропускаются.
func (c *Client) Shows(ctx context.Context, start, end time.Time) ([]model.Show, error) {
	all, err := c.Setlists(ctx)
	if err != nil {
		return nil, err
	}

	var shows []model.Show
	for _, show := range all {
		if show.ShowDate == "" {
			continue
		}

		date, err := show.Date()
		if err != nil {
			c.logger.Warn("Skipping show with invalid date", zap.String("showdate", show.ShowDate))
			continue
		}

		if date.Before(start) || date.After(end) {
			continue
		}
		shows = append(shows, show)
	}

	return shows, nil
}

// ShowDates возвращает даты концертов в диапазоне без повторов
func (c *Client) ShowDates(ctx context.Context, start, end time.Time) ([]string, error) {
	shows, err := c.Shows(ctx, start, end)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(shows))
	dates := make([]string, 0, len(shows))
	for _, show := range shows {
		if _, ok := seen[show.ShowDate]; ok {
			continue
		}
		seen[show.ShowDate] = struct{}{}
		dates = append(dates, show.ShowDate)
	}

	return dates, nil
}

// Ping проверяет, что API отвечает. Ключ не нужен.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.http.R().SetContext(ctx).Get("/")
	if err != nil {
		return &harvest.RemoteFailure{URL: c.http.BaseURL + "/", Err: err}
	}
	if res.StatusCode() >= http.StatusInternalServerError {
		return &harvest.RemoteFailure{URL: c.http.BaseURL + "/", Status: res.StatusCode()}
	}
	return nil
}

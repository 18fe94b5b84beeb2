// Package phishin реализует клиент для API аудиоархива phish.in.
package phishin

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"showharvest/internal/harvest"
	"showharvest/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const showPath = "/api/v2/shows/{date}"

// Client получает треки концертов по дате
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

var _ harvest.Fetcher = (*Client)(nil)

// showResponse тело ответа /shows/{date}; остальные поля концерта не нужны
type showResponse struct {
	Tracks []model.Track `json:"tracks"`
}

// NewClient создает клиент поверх общего HTTP клиента
func NewClient(baseURL string, httpClient *http.Client, userAgent string, logger *zap.Logger) *Client {
	client := resty.NewWithClient(httpClient).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &Client{
		http:   client,
		logger: logger,
	}
}

// Fetch возвращает треки концерта за дату в порядке архива.
// 404 означает, что концерта не было: возвращается harvest.ErrNotFound.
func (c *Client) Fetch(ctx context.Context, date string) ([]model.Track, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("date", date).
		Get(showPath)
	if err != nil {
		return nil, &harvest.RemoteFailure{URL: c.showURL(date), Err: err}
	}

	url := res.Request.URL
	c.logger.Debug("Received response",
		zap.String("url", url),
		zap.Int("status", res.StatusCode()),
		zap.Duration("duration", res.Time()))

	if res.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("no show on %s: %w", date, harvest.ErrNotFound)
	}
	if !res.IsSuccess() {
		return nil, &harvest.RemoteFailure{URL: url, Status: res.StatusCode()}
	}

	var payload showResponse
	decoder := json.NewDecoder(bytes.NewReader(res.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, &harvest.RemoteFailure{
			URL:    url,
			Status: res.StatusCode(),
			Err:    fmt.Errorf("failed to decode show response: %w", err),
		}
	}

	return payload.Tracks, nil
}

func (c *Client) showURL(date string) string {
	return c.http.BaseURL + "/api/v2/shows/" + date
}

// Ping проверяет, что API отвечает. Любой ответ кроме 5xx считается живым.
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

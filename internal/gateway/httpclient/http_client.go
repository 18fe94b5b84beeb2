// Package httpclient создает HTTP клиент, общий для всех удаленных API.
package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"showharvest/internal/config"

	"go.uber.org/zap"
)

// New создает HTTP клиент с настроенным пулом соединений.
// Timeout ограничивает один запрос целиком, 0 означает без ограничения.
func New(cfg config.HTTPClientConfig, logger *zap.Logger) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		DisableKeepAlives:     cfg.DisableKeepAlives,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	logger.Debug("HTTP client created",
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
		zap.Int("max_idle_conns_per_host", cfg.MaxIdleConnsPerHost),
		zap.Duration("response_header_timeout", cfg.ResponseHeaderTimeout),
		zap.Duration("timeout", cfg.Timeout),
		zap.Bool("disable_keep_alives", cfg.DisableKeepAlives))

	return client
}

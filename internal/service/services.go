// Package service содержит бизнес-логику приложения.
package service

import (
	"showharvest/internal/config"
	"showharvest/internal/gateway/httpclient"
	"showharvest/internal/gateway/phishin"
	"showharvest/internal/gateway/phishnet"
	"showharvest/internal/health"

	"go.uber.org/zap"
)

// Services содержит все сервисы приложения
type Services struct {
	Harvest *HarvestService
	Health  *health.Checker
}

// NewServices создает сервисы и клиенты удаленных API
func NewServices(cfg *config.Config, logger *zap.Logger) *Services {
	httpClient := httpclient.New(cfg.HTTPClientConfig, logger)

	tracks := phishin.NewClient(cfg.PhishinBaseURL, httpClient, cfg.UserAgent, logger.Named("phishin"))
	setlists := phishnet.NewClient(cfg.PhishnetBaseURL, cfg.PhishnetAPIKey, httpClient, cfg.UserAgent, logger.Named("phishnet"))

	checker := health.NewChecker(cfg.HTTPClientConfig.Timeout, logger.Named("health"))
	checker.Register("phish.in", tracks.Ping)
	checker.Register("phish.net", setlists.Ping)

	return &Services{
		Harvest: NewHarvestService(tracks, setlists, logger),
		Health:  checker,
	}
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/firstengineering/website/modules/site"
	"github.com/firstengineering/website/pkg/clientip"
	"github.com/firstengineering/website/pkg/config"
	"github.com/firstengineering/website/pkg/email"
	"github.com/firstengineering/website/pkg/httpserver"
	"github.com/firstengineering/website/pkg/logger"
	"github.com/firstengineering/website/pkg/redis"
	"github.com/firstengineering/website/pkg/requestid"
	"github.com/firstengineering/website/svc/contact"
)

type appConfig struct {
	HTTP    httpserver.Config
	Log     logger.Config
	Mail    email.Config
	Contact contact.Config
	Site    site.Config
	Redis   redis.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

func newLogger(cfg logger.Config) (*slog.Logger, error) {
	log, err := logger.NewFromConfig(cfg, serviceName,
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logger.SetAsDefault(log)
	return log, nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/firstengineering/website/modules/site"
	"github.com/firstengineering/website/pkg/email"
	"github.com/firstengineering/website/pkg/httpserver"
	"github.com/firstengineering/website/pkg/logger"
	"github.com/firstengineering/website/pkg/redis"
	"github.com/firstengineering/website/svc/contact"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			log, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}

func serve(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	sender, err := email.NewSender(cfg.Mail)
	if err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	var (
		client    goredis.UniversalClient
		readiness []func(context.Context) error
	)
	if cfg.Site.RateLimitStore == site.StoreRedis {
		rc, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rc.Close()
		client = rc
		readiness = append(readiness, redis.Healthcheck(rc))
	}

	store, closeStore, err := site.NewStore(cfg.Site, client)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := contact.NewService(cfg.Contact, sender, contact.WithLogger(log))
	router, err := site.Router(site.RouterOptions{
		Config:    cfg.Site,
		Forms:     contact.NewHandlers(svc, log),
		Store:     store,
		Logger:    log,
		Readiness: readiness,
	})
	if err != nil {
		return err
	}

	log.Info("website configured",
		logger.Provider(string(cfg.Mail.Provider)),
		slog.String("rate_limit_store", cfg.Site.RateLimitStore),
		slog.Int("rate_limit_max", cfg.Site.RateLimitMax),
		slog.Duration("rate_limit_window", cfg.Site.RateLimitWindow),
	)

	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}

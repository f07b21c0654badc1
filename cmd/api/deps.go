package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	authmem "pet-care-companion/internal/adapters/auth/memory"
	"pet-care-companion/internal/adapters/auth/redisstore"
	"pet-care-companion/internal/platform/config"
	"pet-care-companion/internal/platform/httpclient"
	"pet-care-companion/internal/platform/logger"
	"pet-care-companion/internal/platform/metrics"
	"pet-care-companion/internal/ports/auth"
)

// deps es todo lo que se arma a partir de la configuración.
type deps struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Metrics
	creds   auth.CredentialProvider
	// gateway nil en modo demo
	gateway *httpclient.Client

	closers []func() error
}

func loadDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadConfig(envDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	d := &deps{cfg: cfg, log: log, metrics: metrics.New()}

	if cfg.Credentials.UsesRedis() {
		rs, err := redisstore.New(ctx, redisstore.Config{
			URL:        cfg.Credentials.RedisURL,
			TokenKey:   cfg.Credentials.TokenKey,
			SessionKey: cfg.Credentials.SessionKey,
		})
		if err != nil {
			return nil, fmt.Errorf("credentials store: %w", err)
		}
		d.creds = rs
		d.closers = append(d.closers, rs.Close)
	} else {
		d.creds = authmem.NewStore(cfg.Credentials.Token, cfg.Credentials.Session)
	}

	if cfg.Demo.Enabled {
		log.Info("demo mode: remote backend disabled")
		return d, nil
	}

	gw, err := httpclient.New(httpclient.Config{
		BaseURL:    cfg.Remote.BaseURL,
		Timeout:    cfg.Remote.Timeout(),
		HealthPath: cfg.Remote.HealthPath,
	},
		httpclient.WithTokenSource(d.creds),
		httpclient.WithLogger(log.Named("gateway")),
		httpclient.WithRecorder(d.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("remote gateway: %w", err)
	}
	d.gateway = gw
	return d, nil
}

func (d *deps) Close() {
	for _, c := range d.closers {
		if err := c(); err != nil {
			d.log.Warn("close failed", zap.Error(err))
		}
	}
	_ = d.log.Sync()
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/bez-dna/bzd-messages/internal/client/kafka"
	"github.com/bez-dna/bzd-messages/internal/config"
	"github.com/bez-dna/bzd-messages/internal/pkg/logger"
	"github.com/bez-dna/bzd-messages/internal/pkg/metrics"
	"github.com/bez-dna/bzd-messages/internal/repository/postgres"
	"github.com/bez-dna/bzd-messages/internal/worker/outbox"
)

func main() {
	cfg := config.MustLoad()
	logger := logger.New(cfg.Service.Name+"-outbox", cfg.Service.Env)
	defer logger.Sync()

	if !cfg.Outbox.Enabled {
		logger.Warn("outbox is disabled, events are published directly by the service")
	}

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

	m := metrics.New(cfg.Service.Name)

	publisher := kafka.New(cfg, m)
	defer publisher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = context.WithValue(ctx, config.KeyMetrics, m)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Service.MetricsPort), m.Handler()); err != nil {
			logger.Error(fmt.Sprintf("failed to serve metrics: %v", err))
		}
	}()

	dispatcher := outbox.New(dbRepo, publisher, cfg.Outbox)
	if err := dispatcher.Run(ctx); err != nil {
		logger.Error(fmt.Sprintf("outbox dispatcher stopped: %v", err))
	}
}

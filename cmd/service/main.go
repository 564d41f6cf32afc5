package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/bez-dna/bzd-messages/internal/client/kafka"
	"github.com/bez-dna/bzd-messages/internal/config"
	api "github.com/bez-dna/bzd-messages/internal/generated"
	"github.com/bez-dna/bzd-messages/internal/infra"
	"github.com/bez-dna/bzd-messages/internal/pkg/jwt"
	"github.com/bez-dna/bzd-messages/internal/pkg/logger"
	"github.com/bez-dna/bzd-messages/internal/pkg/metrics"
	"github.com/bez-dna/bzd-messages/internal/pkg/tx"
	"github.com/bez-dna/bzd-messages/internal/pkg/validator"
	db "github.com/bez-dna/bzd-messages/internal/repository/postgres"
	"github.com/bez-dna/bzd-messages/internal/repository/redis"
	"github.com/bez-dna/bzd-messages/internal/rest"
	"github.com/bez-dna/bzd-messages/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger.New(cfg.Service.Name, cfg.Service.Env)
	defer logger.Sync()

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	m := metrics.New(cfg.Service.Name)

	publisher := kafka.New(cfg, m)
	defer publisher.Close()

	var cache service.MessageCache
	if cfg.Redis.Addr != "" {
		messageCache := redis.New(cfg)
		defer messageCache.Close()
		cache = messageCache
	}

	vldtr := validator.New()
	verifier := jwt.New(cfg.Auth.JWTSecret)

	messagesService := service.New(dbRepo, publisher, cache, vldtr, m, cfg)

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.LoggerGRPC(logger),
			infra.MetricsGRPC(m),
		),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	handler := rest.New(messagesService, messagesService)
	router := chi.NewRouter()

	router.Handle("/metrics", m.Handler())
	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return infra.MetricsHTTP(next, m)
		})
		r.Use(func(next http.Handler) http.Handler {
			return infra.AuthInterceptorHTTP(next, verifier)
		})
		r.Use(func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, logger)
		})
		r.Use(func(next http.Handler) http.Handler {
			return tx.TxMiddlewareHTTP(dbRepo)(next)
		})

		api.HandlerFromMux(handler, r)
	})

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	mux := cmux.New(listener)

	grpcListener := mux.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := mux.Match(cmux.HTTP1Fast())

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := mux.Serve(); err != nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	logger.Info(fmt.Sprintf("listening on :%s", cfg.Service.Port))

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}

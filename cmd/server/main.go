package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	adminone "onboard/internal/administrator/one"
	admintwo "onboard/internal/administrator/two"
	"onboard/internal/events"
	"onboard/internal/events/journal"
	"onboard/internal/events/kafka"
	"onboard/internal/kyc"
	kycstore "onboard/internal/kyc/store"
	"onboard/internal/platform/config"
	"onboard/internal/platform/httpserver"
	"onboard/internal/platform/logger"
	platformredis "onboard/internal/platform/redis"
	"onboard/internal/processing"
	procmetrics "onboard/internal/processing/metrics"
	"onboard/internal/processing/validation"
	httptransport "onboard/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx := context.Background()

	// Event bus: the journal always records; Kafka joins the fan-out when
	// brokers are configured.
	sinks := []events.Bus{}

	var journalStore journal.Store = journal.NewInMemoryStore()
	if cfg.PostgresURL != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			log.Error("postgres connect failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		pgStore := journal.NewPostgresStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Error("journal schema failed", "error", err)
			os.Exit(1)
		}
		journalStore = pgStore
	}
	sinks = append(sinks, journal.NewSink(journalStore))

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.New(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Error("kafka connect failed", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
	}

	bus := events.NewFanout(sinks...)

	// KYC checker with a shared cache when Redis is configured.
	var cache kycstore.Cache = kycstore.NewInMemoryCache(config.KYCCacheTTL)
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		cache = kycstore.NewRedisCache(redisClient.Client, config.KYCCacheTTL)
	}
	checker := kyc.NewCachedChecker(kyc.NewService(50*time.Millisecond), cache, log)

	metrics := procmetrics.New()

	selector := processing.NewSelector(
		processing.NewProductOneStrategy(
			adminone.MockService{Latency: 20 * time.Millisecond},
			validation.NewProductOneValidator(),
			bus,
			processing.WithStrategyLogger(log),
			processing.WithStrategyMetrics(metrics),
		),
		processing.NewProductTwoStrategy(
			admintwo.MockService{Latency: 20 * time.Millisecond},
			validation.NewProductTwoValidator(),
			bus,
			processing.WithStrategyLogger(log),
			processing.WithStrategyMetrics(metrics),
		),
	)

	processor := processing.NewProcessor(checker, selector, bus,
		processing.WithLogger(log),
		processing.WithMetrics(metrics),
	)

	handler := httptransport.NewHandler(processor, log)
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting onboarding service", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/config"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/dto"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/endpoints"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/service"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/transport"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/itinerary"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/logger"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/plancache"
	httptransport "github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/transport/http"
)

func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel, cfg.LogFormat)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	var limiter httptransport.RateLimiter
	if cfg.RateLimit.RPS > 0 {
		limiter = redis_rate.NewLimiter(redisClient)
	}

	endpts := makeEndpoints(ctx, &cfg, redisClient)
	router := transport.MakeHTTPRouter(&cfg, endpts, limiter)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config, redisClient *redis.Client) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init service endpoint
	return endpoints.Endpoints{
		PlannerEndpoint: makePlannerEndpoint(cfg, redisClient),
	}
}

func makePlannerEndpoint(cfg *config.Config, redisClient *redis.Client) endpoints.PlannerEndpoint {
	optimizer := itinerary.New(
		itinerary.WithThresholds(cfg.Optimizer.Thresholds()),
	)

	// cache
	var cache service.PlanCacher
	if cfg.Cache.Enabled {
		cache = plancache.NewPlanCache(redisClient)
	}

	// service
	plannerService := service.NewPlannerService(optimizer, cache,
		cfg.Cache.Expiration, cfg.Cache.LockTimeout, cfg.Optimizer.MaxCandidatesPerCategory)

	// endpoint
	return endpoints.MakePlannerEndpoint(plannerService)
}

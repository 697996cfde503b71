package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"studyaid/docs"
	"studyaid/internal/clock"
	"studyaid/internal/config"
	handlers "studyaid/internal/http/handler"
	"studyaid/internal/http/middleware"
	"studyaid/internal/logging"
	tracing "studyaid/internal/otel"
	"studyaid/internal/ratelimit"
	"studyaid/internal/repository/memory"
	"studyaid/internal/seed"
	"studyaid/internal/service"
	"studyaid/internal/storage"
)

// @title Study Aid API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, os.Stdout)

	if err := run(cfg, logger); err != nil {
		logger.Error("server_exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Object storage for uploaded bytes: MinIO when configured, process memory otherwise
	objStore, err := storage.New(cfg.MinIO)
	if err != nil {
		return err
	}

	clk := clock.New()
	snap, err := loadSeed(cfg, clk.Now())
	if err != nil {
		return err
	}
	repo := memory.NewStore(snap)

	latency := service.DefaultLatency().Scale(cfg.Simulation.LatencyScale)
	svc := service.NewStudyService(repo, objStore, service.Options{
		Clock:   clk,
		Latency: &latency,
		OwnerID: cfg.OwnerID,
		Logger:  logger,
	})
	defer svc.Close()

	routeOpts := handlers.RouteOptions{
		Upload: handlers.DefaultUploadPolicy(cfg.Upload.MaxBytes),
		Health: map[string]handlers.Pinger{},
	}
	if cfg.RateLimit.RedisAddr != "" {
		limiter, err := ratelimit.NewRedisFixedWindowLimiter(
			cfg.RateLimit.RedisAddr,
			cfg.RateLimit.RedisPassword,
			cfg.RateLimit.Prefix,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSec)*time.Second,
		)
		if err != nil {
			return err
		}
		defer limiter.Close()
		routeOpts.Limiter = limiter
		routeOpts.Health["redis"] = limiter
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Leave headroom for multipart framing around the largest accepted file.
		BodyLimit: int(cfg.Upload.MaxBytes) + 1<<20,
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, svc, routeOpts)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server_starting", "addr", addr, "seeded", snap != nil, "latency_scale", cfg.Simulation.LatencyScale)
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server_stopping")
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadSeed returns the initial session state, or nil when seeding is disabled.
func loadSeed(cfg *config.AppConfig, now time.Time) (*memory.Snapshot, error) {
	if !cfg.Simulation.SeedEnabled {
		return nil, nil
	}
	if cfg.Simulation.SeedFile != "" {
		return seed.LoadFile(cfg.Simulation.SeedFile, now, cfg.OwnerID)
	}
	return seed.Default(now, cfg.OwnerID)
}

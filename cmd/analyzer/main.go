// Command main runs the trendpulse analysis scheduler: it periodically
// rebuilds the trend snapshot for every active keyword.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trendpulse/internal/cache"
	"trendpulse/internal/config"
	"trendpulse/internal/database"
	"trendpulse/internal/models"
	"trendpulse/internal/observability"
	"trendpulse/internal/repository"
	"trendpulse/internal/trend"

	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "trendpulse",
		ServiceVersion: "1.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	cache.InitRedis(cfg.RedisURL)

	keywords := repository.NewKeywordRepository(db)
	posts := repository.NewPostRepository(db)
	metrics := repository.NewMetricRepository(db)
	orchestrator := trend.NewOrchestrator(cache.NewRedisStore(cache.GetClient()))
	history := trend.NewHistoryTracker(orchestrator)
	builder := trend.NewBuilder(keywords, posts, metrics, orchestrator, history)

	runAll := func() {
		ctx := context.Background()
		active, err := keywords.ListActive(ctx)
		if err != nil {
			observability.Logger.Error("failed to list active keywords",
				slog.String("error", err.Error()))
			return
		}

		for _, kw := range active {
			runCtx, cancel := context.WithTimeout(ctx, cfg.AnalyzeTimeout)
			snapshot, err := builder.Build(runCtx, kw.ID)
			cancel()

			if err != nil {
				level := slog.LevelError
				if models.IsRetryable(err) {
					level = slog.LevelWarn
				}
				observability.Logger.Log(ctx, level, "analysis run failed",
					slog.Uint64("keyword_id", uint64(kw.ID)),
					slog.String("error", err.Error()))
				continue
			}
			observability.Logger.Info("analysis run complete",
				slog.Uint64("keyword_id", uint64(kw.ID)),
				slog.Int("posts", snapshot.TotalPosts),
				slog.String("direction", string(snapshot.Direction)))
		}
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.AnalyzeSchedule, runAll); err != nil {
		log.Fatalf("Invalid ANALYZE_SCHEDULE %q: %v", cfg.AnalyzeSchedule, err)
	}

	observability.Logger.Info("analyzer starting",
		slog.String("schedule", cfg.AnalyzeSchedule))
	scheduler.Start()
	runAll()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down analyzer...")
	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(10 * time.Second):
		log.Println("Timed out waiting for running jobs")
	}
	if err := shutdownTracing(context.Background()); err != nil {
		log.Printf("Tracing shutdown error: %v", err)
	}
}

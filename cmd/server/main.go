package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/DarwinQVO/quotify/internal/config"
	"github.com/DarwinQVO/quotify/internal/db"
	"github.com/DarwinQVO/quotify/internal/handler"
	"github.com/DarwinQVO/quotify/internal/middleware"
	"github.com/DarwinQVO/quotify/internal/repository"
	"github.com/DarwinQVO/quotify/internal/router"
	"github.com/DarwinQVO/quotify/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "quotify-api")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	// Repositories
	sourceRepo := repository.NewSourceRepo(pool)
	quoteRepo := repository.NewQuoteRepo(pool)
	settingsRepo := repository.NewSettingsRepo(pool)
	statsRepo := repository.NewStatsRepo(pool)

	// Services
	settingsSvc := service.NewSettingsService(settingsRepo, cfg.OpenAIAPIKey)
	scraper := service.NewScraperService(cfg.YTDLPPath)
	transcriber := service.NewTranscriberService(cfg.YTDLPPath)

	runner := service.NewPipelineRunner(sourceRepo, scraper, transcriber, settingsSvc, cache)
	runner.SetDurationObserver(handler.Metrics.PipelineDuration)

	sourceSvc := service.NewSourceService(sourceRepo, runner, cache)
	quoteSvc := service.NewQuoteService(quoteRepo, sourceRepo)
	syncSvc := service.NewSyncService(sourceRepo, quoteRepo)

	// Background sweep for sources stranded in pending (e.g. after a restart)
	worker := service.NewPipelineWorker(sourceRepo, runner)
	go worker.Start(ctx)

	// Handlers
	h := &router.Handlers{
		Source:     handler.NewSourceHandler(sourceSvc),
		Transcript: handler.NewTranscriptHandler(sourceSvc),
		Quote:      handler.NewQuoteHandler(quoteSvc),
		Export:     handler.NewExportHandler(quoteSvc),
		Settings:   handler.NewSettingsHandler(settingsSvc),
		Stats:      handler.NewStatsHandler(statsRepo),
		Sync:       handler.NewSyncHandler(syncSvc),
		Health:     handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Quotify API",
		ServerHeader: "Quotify",
	})
	router.Setup(app, h, cfg.CORSOrigins)

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Println("shutting down...")
		worker.Stop()
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("Quotify backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
	log.Println("server stopped")
}

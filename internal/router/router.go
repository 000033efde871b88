package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/DarwinQVO/quotify/internal/handler"
	"github.com/DarwinQVO/quotify/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Source     *handler.SourceHandler
	Transcript *handler.TranscriptHandler
	Quote      *handler.QuoteHandler
	Export     *handler.ExportHandler
	Settings   *handler.SettingsHandler
	Stats      *handler.StatsHandler
	Sync       *handler.SyncHandler
	Health     *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Health checks and metrics (outside the API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// Per-route rate limiters
	sourceCreateRL := middleware.NewSourceCreateRateLimiter()
	quoteCreateRL := middleware.NewQuoteCreateRateLimiter()
	settingsRL := middleware.NewSettingsRateLimiter()
	exportRL := middleware.NewExportRateLimiter()

	// API routes
	api := app.Group("/api")

	// Source routes
	api.Post("/sources", h.Source.Create, sourceCreateRL.Handler())
	api.Get("/sources", h.Source.List)
	api.Get("/sources/:id", h.Source.Get)
	api.Post("/sources/:id/retry", h.Source.Retry, sourceCreateRL.Handler())
	api.Delete("/sources/:id", h.Source.Delete)

	// Transcript routes
	api.Get("/sources/:id/transcript", h.Transcript.Get)

	// Quote routes
	api.Post("/quotes", h.Quote.Create, quoteCreateRL.Handler())
	api.Get("/quotes", h.Quote.List)
	api.Delete("/quotes", h.Quote.Delete)

	// Export route
	api.Get("/export", h.Export.Export, exportRL.Handler())

	// Settings routes
	api.Get("/settings", h.Settings.Get)
	api.Put("/settings", h.Settings.Update, settingsRL.Handler())

	// Stats route
	api.Get("/stats", h.Stats.GetStats)

	// Sync route
	api.Get("/sync/full", h.Sync.FullSync)
}

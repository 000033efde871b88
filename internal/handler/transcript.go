package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/DarwinQVO/quotify/internal/middleware"
	"github.com/DarwinQVO/quotify/internal/service"
)

type TranscriptHandler struct {
	svc *service.SourceService
}

func NewTranscriptHandler(svc *service.SourceService) *TranscriptHandler {
	return &TranscriptHandler{svc: svc}
}

// Get handles GET /api/sources/:id/transcript?time=12.5
func (h *TranscriptHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSourceID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	t := fiber.Query[float64](c, "time")
	if t < 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "time must be non-negative")
	}

	resp, cacheHit, err := h.svc.TranscriptView(c.Context(), id, t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Source not found")
		}
		if errors.Is(err, service.ErrNoTranscript) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "NO_TRANSCRIPT", "Source has no transcript yet")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load transcript")
	}

	if cacheHit {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
	}
	return c.JSON(resp)
}

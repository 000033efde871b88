package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/DarwinQVO/quotify/internal/middleware"
	"github.com/DarwinQVO/quotify/internal/model"
	"github.com/DarwinQVO/quotify/internal/service"
)

type SourceHandler struct {
	svc *service.SourceService
}

func NewSourceHandler(svc *service.SourceService) *SourceHandler {
	return &SourceHandler{svc: svc}
}

// Create handles POST /api/sources
func (h *SourceHandler) Create(c fiber.Ctx) error {
	var req model.SourceRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	url, errMsg := middleware.ValidateSourceURL(req.URL)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	src, err := h.svc.Add(c.Context(), url)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add source")
	}

	Metrics.SourcesTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(src)
}

// List handles GET /api/sources
func (h *SourceHandler) List(c fiber.Ctx) error {
	sources, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list sources")
	}
	if sources == nil {
		sources = []model.Source{}
	}
	return c.JSON(sources)
}

// Get handles GET /api/sources/:id
func (h *SourceHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSourceID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	src, err := h.svc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Source not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to lookup source")
	}

	return c.JSON(src)
}

// Retry handles POST /api/sources/:id/retry
func (h *SourceHandler) Retry(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSourceID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	src, err := h.svc.Retry(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyRunning) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "CONFLICT", "Source is already being processed")
		}
		if errors.Is(err, service.ErrNotRetryable) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "CONFLICT", "Only errored sources can be retried")
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Source not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retry source")
	}

	return c.JSON(src)
}

// Delete handles DELETE /api/sources/:id
func (h *SourceHandler) Delete(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSourceID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Remove(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Source not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete source")
	}

	return c.JSON(fiber.Map{"success": true})
}

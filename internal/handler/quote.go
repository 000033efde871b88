package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/DarwinQVO/quotify/internal/middleware"
	"github.com/DarwinQVO/quotify/internal/model"
	"github.com/DarwinQVO/quotify/internal/quote"
	"github.com/DarwinQVO/quotify/internal/service"
)

type QuoteHandler struct {
	svc *service.QuoteService
}

func NewQuoteHandler(svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

// Create handles POST /api/quotes
func (h *QuoteHandler) Create(c fiber.Ctx) error {
	var req model.QuoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	sourceID, errMsg := middleware.ValidateSourceID(req.SourceID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.SourceID = sourceID

	q, err := h.svc.Extract(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Source not found")
		case errors.Is(err, service.ErrNoTranscript):
			return middleware.ErrorResponse(c, fiber.StatusConflict, "NO_TRANSCRIPT", "Source has no transcript yet")
		case errors.Is(err, service.ErrInvalidSelection):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "Selection range is out of bounds")
		case errors.Is(err, quote.ErrSelectionTooShort):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "SELECTION_TOO_SHORT", "A quote needs at least 3 words")
		default:
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to extract quote")
		}
	}

	Metrics.QuotesTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(q)
}

// List handles GET /api/quotes?sourceId=X
func (h *QuoteHandler) List(c fiber.Ctx) error {
	sourceID := fiber.Query[string](c, "sourceId")

	quotes, err := h.svc.List(c.Context(), sourceID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list quotes")
	}
	if quotes == nil {
		quotes = []model.Quote{}
	}
	return c.JSON(quotes)
}

// Delete handles DELETE /api/quotes
func (h *QuoteHandler) Delete(c fiber.Ctx) error {
	var req model.QuoteDeleteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	ids, errMsg := middleware.ValidateQuoteIDs(req.QuoteIDs)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	deleted, err := h.svc.Remove(c.Context(), ids)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete quotes")
	}

	return c.JSON(fiber.Map{"success": true, "deleted": deleted})
}

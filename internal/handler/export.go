package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/DarwinQVO/quotify/internal/middleware"
	"github.com/DarwinQVO/quotify/internal/service"
)

type ExportHandler struct {
	svc *service.QuoteService
}

func NewExportHandler(svc *service.QuoteService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export handles GET /api/export?sourceId=X — plain-text quote export.
func (h *ExportHandler) Export(c fiber.Ctx) error {
	sourceID := fiber.Query[string](c, "sourceId")

	text, err := h.svc.Export(c.Context(), sourceID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export quotes")
	}

	c.Set("Content-Type", "text/plain; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="quotes.txt"`)
	return c.SendString(text)
}

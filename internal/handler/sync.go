package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/DarwinQVO/quotify/internal/middleware"
	"github.com/DarwinQVO/quotify/internal/service"
)

type SyncHandler struct {
	svc *service.SyncService
}

func NewSyncHandler(svc *service.SyncService) *SyncHandler {
	return &SyncHandler{svc: svc}
}

// FullSync handles GET /api/sync/full — the complete client hydration snapshot.
func (h *SyncHandler) FullSync(c fiber.Ctx) error {
	resp, err := h.svc.FullSync(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build sync snapshot")
	}
	return c.JSON(resp)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/DarwinQVO/quotify/internal/middleware"
	"github.com/DarwinQVO/quotify/internal/model"
	"github.com/DarwinQVO/quotify/internal/service"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get handles GET /api/settings
func (h *SettingsHandler) Get(c fiber.Ctx) error {
	view, err := h.svc.View(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load settings")
	}
	return c.JSON(view)
}

// Update handles PUT /api/settings
func (h *SettingsHandler) Update(c fiber.Ctx) error {
	var req model.SettingsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if req.Theme != nil {
		theme, errMsg := middleware.ValidateTheme(*req.Theme)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.Theme = &theme
	}

	view, err := h.svc.Update(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSetting) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "maxQuotes must be positive")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update settings")
	}
	return c.JSON(view)
}

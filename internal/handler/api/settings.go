package api

import (
	"errors"
	"net/http"

	reqdto "cart-recovery/internal/handler/dto/request"
	resdto "cart-recovery/internal/handler/dto/response"
	"cart-recovery/internal/handler/httperr"
	"cart-recovery/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings  *usecase.SettingsService
	templates *usecase.TemplateService
}

func NewSettingsHandler(settings *usecase.SettingsService, templates *usecase.TemplateService) *SettingsHandler {
	return &SettingsHandler{
		settings:  settings,
		templates: templates,
	}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Settings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load settings", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettings(settings))
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.settings.Update(c.Request.Context(), req.ToSettings()); err != nil {
		if errors.Is(err, usecase.ErrInvalidSettings) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid settings", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store settings", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SettingsHandler) GetTemplates(c *gin.Context) {
	templates, err := h.templates.Templates(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load templates", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.TemplatesResponse{Templates: templates})
}

func (h *SettingsHandler) UpdateTemplates(c *gin.Context) {
	var req reqdto.UpdateTemplatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.templates.Update(c.Request.Context(), req.ToTemplates()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store templates", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

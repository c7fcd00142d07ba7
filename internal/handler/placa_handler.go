package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/KauaBAG/IfControll/internal/models"
	"github.com/KauaBAG/IfControll/pkg/response"
)

type placaService interface {
	Resumo(ctx context.Context) ([]models.PlacaResumo, error)
}

// PlacaHandler serves the per-plate aggregate view.
type PlacaHandler struct {
	service placaService
}

// NewPlacaHandler constructs the handler.
func NewPlacaHandler(service placaService) *PlacaHandler {
	return &PlacaHandler{service: service}
}

// List godoc
// @Summary List distinct plates with case counts and latest activity
// @Tags Plates
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /plates [get]
func (h *PlacaHandler) List(c *gin.Context) {
	resumos, err := h.service.Resumo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "OK", resumos)
}

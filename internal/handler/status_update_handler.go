package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/KauaBAG/IfControll/internal/dto"
	"github.com/KauaBAG/IfControll/internal/models"
	appErrors "github.com/KauaBAG/IfControll/pkg/errors"
	"github.com/KauaBAG/IfControll/pkg/response"
)

type statusUpdateService interface {
	AddStatus(ctx context.Context, manutencaoID int64, req dto.CreateStatusUpdateRequest) (*models.StatusUpdate, error)
}

// StatusUpdateHandler appends notes to a case history.
type StatusUpdateHandler struct {
	service statusUpdateService
}

// NewStatusUpdateHandler constructs the handler.
func NewStatusUpdateHandler(service statusUpdateService) *StatusUpdateHandler {
	return &StatusUpdateHandler{service: service}
}

// Create godoc
// @Summary Append a status note to a case
// @Tags Status
// @Accept json
// @Produce json
// @Param id path int true "Case ID"
// @Param payload body dto.CreateStatusUpdateRequest true "Note payload"
// @Success 201 {object} response.Envelope
// @Router /status_update/{id} [post]
func (h *StatusUpdateHandler) Create(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Manutenção não encontrada"))
		return
	}

	var req dto.CreateStatusUpdateRequest
	_ = c.ShouldBindJSON(&req)

	entry, err := h.service.AddStatus(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Status adicionado", gin.H{"id": entry.ID})
}

package handler

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KauaBAG/IfControll/internal/dto"
	"github.com/KauaBAG/IfControll/internal/models"
	"github.com/KauaBAG/IfControll/internal/service"
	appErrors "github.com/KauaBAG/IfControll/pkg/errors"
	"github.com/KauaBAG/IfControll/pkg/response"
)

type cronologiaService interface {
	Get(ctx context.Context, id int64) (*models.ManutencaoDetail, error)
	List(ctx context.Context, q dto.ListManutencoesQuery) ([]models.Manutencao, models.ListMeta, error)
	Create(ctx context.Context, req dto.CreateManutencaoRequest) (*models.Manutencao, error)
	Update(ctx context.Context, id int64, body map[string]json.RawMessage) (*models.Manutencao, error)
	Delete(ctx context.Context, id int64) error
}

// ManutencaoHandler exposes the maintenance chronology resource.
type ManutencaoHandler struct {
	service cronologiaService
}

// NewManutencaoHandler constructs the handler.
func NewManutencaoHandler(service cronologiaService) *ManutencaoHandler {
	return &ManutencaoHandler{service: service}
}

// List godoc
// @Summary List maintenance cases
// @Tags Records
// @Produce json
// @Param placa query string false "Plate substring (case-insensitive)"
// @Param concluido query int false "Completion flag (0/1)"
// @Param limit query int false "Window size, default 100, max 500"
// @Param offset query int false "Window offset"
// @Success 200 {object} response.Envelope
// @Router /records [get]
func (h *ManutencaoHandler) List(c *gin.Context) {
	q := dto.ListManutencoesQuery{
		Placa: c.Query("placa"),
		Limit: service.DefaultListLimit,
	}
	if raw, ok := c.GetQuery("concluido"); ok {
		n, _ := strconv.Atoi(raw)
		q.Concluido = &n
	}
	if raw, ok := c.GetQuery("limit"); ok {
		q.Limit, _ = strconv.Atoi(raw)
	}
	if raw, ok := c.GetQuery("offset"); ok {
		q.Offset, _ = strconv.Atoi(raw)
	}

	rows, meta, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "OK", rows, meta)
}

// Get godoc
// @Summary Get one maintenance case with its status history
// @Tags Records
// @Produce json
// @Param id path int true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /records/{id} [get]
func (h *ManutencaoHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.ErrNotFound)
		return
	}
	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "OK", detail)
}

// Create godoc
// @Summary Create a maintenance case
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body dto.CreateManutencaoRequest true "Case payload"
// @Success 201 {object} response.Envelope
// @Router /records [post]
func (h *ManutencaoHandler) Create(c *gin.Context) {
	var req dto.CreateManutencaoRequest
	// An absent or malformed body behaves as an empty payload; the service
	// reports the first missing required field.
	_ = c.ShouldBindJSON(&req)

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Manutenção criada", created)
}

// Update godoc
// @Summary Partially update a maintenance case
// @Tags Records
// @Accept json
// @Produce json
// @Param id path int true "Case ID"
// @Param payload body object true "Any subset of mutable fields, plus optional novo_status"
// @Success 200 {object} response.Envelope
// @Router /records/{id} [put]
func (h *ManutencaoHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.ErrNotFound)
		return
	}

	body := map[string]json.RawMessage{}
	if raw, err := io.ReadAll(c.Request.Body); err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	updated, err := h.service.Update(c.Request.Context(), id, body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Atualizado", updated)
}

// Delete godoc
// @Summary Delete a maintenance case and its history
// @Tags Records
// @Produce json
// @Param id path int true "Case ID"
// @Success 200 {object} response.Envelope
// @Router /records/{id} [delete]
func (h *ManutencaoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.ErrNotFound)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Deletado com sucesso", nil)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

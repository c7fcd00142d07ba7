package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KauaBAG/IfControll/internal/dto"
	"github.com/KauaBAG/IfControll/internal/service"
	"github.com/KauaBAG/IfControll/pkg/response"
)

type exportService interface {
	Export(ctx context.Context, q dto.ExportQuery) (*service.ExportFile, error)
}

// ExportHandler streams chronology reports as file downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export godoc
// @Summary Download the chronology as CSV or PDF
// @Tags Export
// @Produce octet-stream
// @Param formato query string false "csv (default) or pdf"
// @Param placa query string false "Plate substring (case-insensitive)"
// @Param concluido query int false "Completion flag (0/1)"
// @Success 200 {file} file
// @Router /export/records [get]
func (h *ExportHandler) Export(c *gin.Context) {
	q := dto.ExportQuery{
		Placa:   c.Query("placa"),
		Formato: c.Query("formato"),
	}
	if raw, ok := c.GetQuery("concluido"); ok {
		n, _ := strconv.Atoi(raw)
		q.Concluido = &n
	}

	file, err := h.service.Export(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Bytes)
}

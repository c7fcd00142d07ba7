package dto

import "github.com/KauaBAG/IfControll/internal/models"

// CreateManutencaoRequest is the POST /records payload. Wire names are the
// Portuguese column names the desktop client sends.
type CreateManutencaoRequest struct {
	Placa         string           `json:"placa" validate:"required"`
	Situacao      string           `json:"situacao" validate:"required"`
	DataCadastro  *models.DateTime `json:"data_cadastro"`
	QuemInformou  *string          `json:"quem_informou"`
	OndeEsta      *string          `json:"onde_esta"`
	StatusTexto   *string          `json:"status_texto"`
	Previsao      *models.DateTime `json:"previsao"`
	DataConclusao *models.DateTime `json:"data_conclusao"`
	Concluido     models.Flag      `json:"concluido"`
}

// ListManutencoesQuery carries the decoded list filters.
type ListManutencoesQuery struct {
	Placa     string
	Concluido *int
	Limit     int
	Offset    int
}

// CreateStatusUpdateRequest is the POST /status_update/{id} payload.
type CreateStatusUpdateRequest struct {
	Texto string  `json:"texto" validate:"required"`
	Autor *string `json:"autor"`
}

// Export formats supported by GET /export/records.
const (
	FormatoCSV = "csv"
	FormatoPDF = "pdf"
)

// ExportQuery selects the rows and rendering of an export.
type ExportQuery struct {
	Placa     string
	Concluido *int
	Formato   string
}

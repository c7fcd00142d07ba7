package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KauaBAG/IfControll/internal/dto"
	"github.com/KauaBAG/IfControll/internal/models"
	appErrors "github.com/KauaBAG/IfControll/pkg/errors"
	"github.com/KauaBAG/IfControll/pkg/export"
)

var exportHeaders = []string{
	"ID", "Placa", "Situação", "Data Cadastro", "Quem Informou",
	"Onde Está", "Status", "Previsão", "Conclusão", "Concluído",
}

// ExportFile is a rendered report ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Bytes       []byte
}

// ExportService renders the maintenance chronology as a downloadable CSV or
// PDF report, the same spreadsheet the desktop client produces locally.
type ExportService struct {
	repo   manutencaoStore
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService constructs the service.
func NewExportService(repo manutencaoStore, logger *zap.Logger) *ExportService {
	return &ExportService{repo: repo, logger: logger, now: time.Now}
}

// Export renders up to MaxListLimit matching cases, newest first.
func (s *ExportService) Export(ctx context.Context, q dto.ExportQuery) (*ExportFile, error) {
	formato := strings.ToLower(strings.TrimSpace(q.Formato))
	if formato == "" {
		formato = dto.FormatoCSV
	}
	if formato != dto.FormatoCSV && formato != dto.FormatoPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("Formato inválido: %s", q.Formato))
	}

	rows, _, err := s.repo.List(ctx, models.ManutencaoFilter{
		Placa:     strings.ToUpper(strings.TrimSpace(q.Placa)),
		Concluido: q.Concluido,
		Limit:     MaxListLimit,
	})
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Title:   "Cronologia de Manutenções",
		Headers: exportHeaders,
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, m := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Placa,
			m.Situacao,
			formatDateTime(&m.DataCadastro),
			stringOrEmpty(m.QuemInformou),
			stringOrEmpty(m.OndeEsta),
			stringOrEmpty(m.StatusTexto),
			formatDateTime(m.Previsao),
			formatDateTime(m.DataConclusao),
			simNao(m.Concluido),
		})
	}

	stamp := s.now().Format("20060102_150405")
	switch formato {
	case dto.FormatoPDF:
		payload, err := export.RenderPDF(table)
		if err != nil {
			return nil, fmt.Errorf("export pdf: %w", err)
		}
		return &ExportFile{
			Filename:    "cronologia_" + stamp + ".pdf",
			ContentType: "application/pdf",
			Bytes:       payload,
		}, nil
	default:
		payload, err := export.RenderCSV(table)
		if err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
		return &ExportFile{
			Filename:    "cronologia_" + stamp + ".csv",
			ContentType: "text/csv; charset=utf-8",
			Bytes:       payload,
		}, nil
	}
}

func formatDateTime(d *models.DateTime) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.Format(models.WireTimeLayout)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func simNao(f models.Flag) string {
	if f.Bool() {
		return "Sim"
	}
	return "Não"
}

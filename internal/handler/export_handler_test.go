package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KauaBAG/IfControll/internal/dto"
	"github.com/KauaBAG/IfControll/internal/service"
	appErrors "github.com/KauaBAG/IfControll/pkg/errors"
)

type stubExportService struct {
	file      *service.ExportFile
	err       error
	lastQuery dto.ExportQuery
}

func (s *stubExportService) Export(_ context.Context, q dto.ExportQuery) (*service.ExportFile, error) {
	s.lastQuery = q
	return s.file, s.err
}

func TestExportDownload(t *testing.T) {
	svc := &stubExportService{file: &service.ExportFile{
		Filename:    "cronologia_20250310_143000.csv",
		ContentType: "text/csv; charset=utf-8",
		Bytes:       []byte("ID,Placa\n"),
	}}
	h := NewExportHandler(svc)

	c, w := newTestContext(t, http.MethodGet, "/export/records?formato=csv&placa=abc&concluido=1", "")
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "csv", svc.lastQuery.Formato)
	require.Equal(t, "abc", svc.lastQuery.Placa)
	require.NotNil(t, svc.lastQuery.Concluido)
	require.Equal(t, 1, *svc.lastQuery.Concluido)
	require.Contains(t, w.Header().Get("Content-Disposition"), "cronologia_20250310_143000.csv")
	require.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	require.Equal(t, "ID,Placa\n", w.Body.String())
}

func TestExportInvalidFormat(t *testing.T) {
	svc := &stubExportService{err: appErrors.Clone(appErrors.ErrValidation, "Formato inválido: xlsx")}
	h := NewExportHandler(svc)

	c, w := newTestContext(t, http.MethodGet, "/export/records?formato=xlsx", "")
	h.Export(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	require.False(t, envelope.Status)
	require.Equal(t, "Formato inválido: xlsx", envelope.Message)
}

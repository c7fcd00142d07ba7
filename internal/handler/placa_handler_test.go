package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KauaBAG/IfControll/internal/models"
	appErrors "github.com/KauaBAG/IfControll/pkg/errors"
)

type stubPlacaService struct {
	resumos []models.PlacaResumo
	err     error
}

func (s *stubPlacaService) Resumo(_ context.Context) ([]models.PlacaResumo, error) {
	return s.resumos, s.err
}

func TestPlacaList(t *testing.T) {
	svc := &stubPlacaService{resumos: []models.PlacaResumo{
		{Placa: "ABC1234", Total: 3, Concluidas: 1, UltimaAtualizacao: models.NewDateTime(time.Now())},
	}}
	h := NewPlacaHandler(svc)

	c, w := newTestContext(t, http.MethodGet, "/plates", "")
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	require.True(t, envelope.Status)
	require.Contains(t, w.Body.String(), `"placa":"ABC1234"`)
	require.Contains(t, w.Body.String(), `"total":3`)
}

func TestPlacaListError(t *testing.T) {
	h := NewPlacaHandler(&stubPlacaService{err: appErrors.ErrInternal})

	c, w := newTestContext(t, http.MethodGet, "/plates", "")
	h.List(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	envelope := decodeEnvelope(t, w)
	require.False(t, envelope.Status)
}

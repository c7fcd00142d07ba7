package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	require.Equal(t, "Não encontrado", ErrNotFound.Error())

	wrapped := Wrap(errors.New("conexão recusada"), "INTERNAL_ERROR", http.StatusInternalServerError, "Erro interno")
	require.Equal(t, "Erro interno: conexão recusada", wrapped.Error())
	require.EqualError(t, wrapped.Unwrap(), "conexão recusada")
}

func TestFromError(t *testing.T) {
	require.Nil(t, FromError(nil))

	e := FromError(ErrValidation)
	require.Same(t, ErrValidation, e)

	e = FromError(fmt.Errorf("loading: %w", ErrNotFound))
	require.Equal(t, http.StatusNotFound, e.Status)

	e = FromError(errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, e.Status)
	require.Equal(t, "INTERNAL_ERROR", e.Code)
}

func TestClone(t *testing.T) {
	c := Clone(ErrValidation, "Nenhum campo para atualizar")
	require.Equal(t, "Nenhum campo para atualizar", c.Message)
	require.Equal(t, http.StatusBadRequest, c.Status)
	require.Equal(t, "Requisição inválida", ErrValidation.Message)

	require.Equal(t, ErrNotFound.Message, Clone(ErrNotFound, "").Message)
	require.Nil(t, Clone(nil, "x"))
}

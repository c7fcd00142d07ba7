package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManutencaoWireNames(t *testing.T) {
	m := Manutencao{
		ID:           7,
		Placa:        "ABC1234",
		Situacao:     "Na oficina",
		DataCadastro: NewDateTime(time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)),
	}
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "ABC1234", decoded["placa"])
	require.Equal(t, "2025-03-10 08:00:00", decoded["data_cadastro"])
	require.Equal(t, float64(0), decoded["concluido"])
	require.Nil(t, decoded["quem_informou"])
	require.Nil(t, decoded["previsao"])
}

func TestManutencaoDetailHistoryAlwaysPresent(t *testing.T) {
	detail := ManutencaoDetail{
		Manutencao:   Manutencao{ID: 7, Placa: "ABC1234"},
		Atualizacoes: []StatusUpdate{},
	}
	raw, err := json.Marshal(detail)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	updates, ok := decoded["atualizacoes"].([]interface{})
	require.True(t, ok)
	require.Empty(t, updates)
}

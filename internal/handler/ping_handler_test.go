package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	h := NewPingHandler()

	c, w := newTestContext(t, http.MethodGet, "/ping", "")
	h.Ping(c)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	require.True(t, envelope.Status)
	require.Equal(t, "pong", envelope.Message)

	var payload struct {
		Timestamp string `json:"timestamp"`
		Version   string `json:"version"`
	}
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Equal(t, "3.0", payload.Version)
	require.NotEmpty(t, payload.Timestamp)
}

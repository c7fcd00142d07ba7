package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGatedRouter(secret string, skip ...string) *gin.Engine {
	r := gin.New()
	r.Use(APIKey(secret, skip...))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/records", ok)
	r.GET("/metrics", ok)
	r.OPTIONS("/records", ok)
	return r
}

func performRequest(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIKeyHeader(t *testing.T) {
	r := newGatedRouter("segredo")

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	req.Header.Set("X-Api-Key", "segredo")
	resp := performRequest(r, req)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestAPIKeyHeaderCasing(t *testing.T) {
	r := newGatedRouter("segredo")

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	req.Header.Set("X-API-KEY", "segredo")
	resp := performRequest(r, req)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestAPIKeyQueryFallback(t *testing.T) {
	r := newGatedRouter("segredo")

	req := httptest.NewRequest(http.MethodGet, "/records?api_key=segredo", nil)
	resp := performRequest(r, req)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestAPIKeyRejectsWrongKey(t *testing.T) {
	r := newGatedRouter("segredo")

	for _, target := range []string{"/records", "/records?api_key=errada"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := performRequest(r, req)
		require.Equal(t, http.StatusUnauthorized, resp.Code)
		require.Contains(t, resp.Body.String(), "Chave de API inválida")
		require.Contains(t, resp.Body.String(), `"status":false`)
	}
}

func TestAPIKeySkipsOptions(t *testing.T) {
	r := newGatedRouter("segredo")

	req := httptest.NewRequest(http.MethodOptions, "/records", nil)
	resp := performRequest(r, req)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestAPIKeySkipsPrefixes(t *testing.T) {
	r := newGatedRouter("segredo", "/metrics")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := performRequest(r, req)
	require.Equal(t, http.StatusOK, resp.Code)
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	contenthttp "eduportal/internal/content/delivery/http"
	trackinghttp "eduportal/internal/tracking/delivery/http"
)

func testRouter() http.Handler {
	return NewRouter(&trackinghttp.Handler{}, &contenthttp.Handler{}, zap.NewNop())
}

func getJSON(t *testing.T, router http.Handler, path string) (int, map[string]string) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestRouter_Welcome(t *testing.T) {
	code, body := getJSON(t, testRouter(), "/")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "eduportal", body["name"])
}

func TestRouter_Health(t *testing.T) {
	code, body := getJSON(t, testRouter(), "/health")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_NotFound_JSONBody(t *testing.T) {
	code, body := getJSON(t, testRouter(), "/no-such-route")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "route not found", body["message"])
	assert.Equal(t, "/no-such-route", body["path"])
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/BlogApp/internal/auth"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gateResponse(t *testing.T, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	})

	gate := AuthGate(auth.NewStaticVerifier([]string{"valid-token"}), discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req)
	return rec, reached
}

func decodeErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAuthGateMissingHeader(t *testing.T) {
	rec, reached := gateResponse(t, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeErrorEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Token de autorización requerido", env.Message)
}

func TestAuthGateMalformedHeader(t *testing.T) {
	for _, header := range []string{"valid-token", "Basic dXNlcg==", "Bearer", "Bearer "} {
		rec, reached := gateResponse(t, header)

		assert.False(t, reached, "header=%q", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header=%q", header)
		env := decodeErrorEnvelope(t, rec)
		assert.Equal(t, "Token de autorización inválido", env.Message, "header=%q", header)
	}
}

func TestAuthGateRejectedToken(t *testing.T) {
	rec, reached := gateResponse(t, "Bearer wrong-token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeErrorEnvelope(t, rec)
	assert.Equal(t, "Token de autorización inválido", env.Message)
}

func TestAuthGateAcceptedToken(t *testing.T) {
	rec, reached := gateResponse(t, "Bearer valid-token")

	assert.True(t, reached)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

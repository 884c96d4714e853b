package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "lawgate/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	decode := func(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
		t.Helper()
		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		return body
	}

	t.Run("maps validation errors to 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeValidation, "license file is required"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "validation_failed", body["error"])
		assert.Equal(t, "license file is required", body["error_description"])
	})

	t.Run("maps registration errors to 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeRegistration, "registration failed"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps unauthorized to 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("maps not found to 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeNotFound, "user not found"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("hides non-domain errors behind 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "internal_error", body["error"])
		assert.NotContains(t, body, "error_description")
	})
}

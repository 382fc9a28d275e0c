package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdobak/go-xerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundResponse(t *testing.T) {
	app := newTestApplication()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/articles/missing-slug", nil)

	app.notFoundResponse(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestFailedValidationResponseCarriesDetails(t *testing.T) {
	app := newTestApplication()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/articles", nil)

	app.failedValidationResponse(w, r, &AppError{
		ErrorDetails: map[string]string{"title": "must be provided"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	details, ok := body["errorDetails"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "must be provided", details["title"])
}

func TestConflictResponse(t *testing.T) {
	app := newTestApplication()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/articles", nil)

	app.conflictResponse(w, r, &AppError{
		ErrorDetails: map[string]string{"slug": "An article with this slug already exists"},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInternalErrorDoesNotLeakStorageError(t *testing.T) {
	app := newTestApplication()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/articles", nil)

	app.internalErrorResponse(w, r, xerrors.New(`pq: connection refused on host db-internal-7:5432`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db-internal-7")
	assert.Contains(t, w.Body.String(), "An internal server error occurred.")
}

func TestAuthenticationRequiredResponse(t *testing.T) {
	app := newTestApplication()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/articles", nil)

	app.authenticationRequiredResponse(w, r, xerrors.Newf("authentication required"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

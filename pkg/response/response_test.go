package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Donor created successfully", map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Donor created successfully", body.Message)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Errors)
}

func TestValidationErrorCarriesFieldMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"phone": "phone is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, "phone is required", body.Errors["phone"])
}

func TestErrorHelpersStatusAndFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(http.ResponseWriter, string)
		message  string
		wantCode int
		wantMsg  string
	}{
		{"bad request", BadRequest, "Invalid donor ID", http.StatusBadRequest, "Invalid donor ID"},
		{"conflict", Conflict, "Phone number already registered", http.StatusConflict, "Phone number already registered"},
		{"not found fallback", NotFound, "", http.StatusNotFound, "Resource not found"},
		{"unauthorized fallback", Unauthorized, "", http.StatusUnauthorized, "Unauthorized"},
		{"forbidden fallback", Forbidden, "", http.StatusForbidden, "Forbidden"},
		{"internal fallback", InternalServerError, "", http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, tt.message)

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

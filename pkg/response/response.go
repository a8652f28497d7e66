package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint returns. Errors carries
// field-level validation messages and is omitted otherwise.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, statusCode int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	write(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func fail(w http.ResponseWriter, statusCode int, message, fallback string) {
	if message == "" {
		message = fallback
	}
	write(w, statusCode, Response{
		Success: false,
		Message: message,
	})
}

func ValidationError(w http.ResponseWriter, errors map[string]string) {
	write(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Errors:  errors,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	fail(w, http.StatusBadRequest, message, "Bad request")
}

func Unauthorized(w http.ResponseWriter, message string) {
	fail(w, http.StatusUnauthorized, message, "Unauthorized")
}

func Forbidden(w http.ResponseWriter, message string) {
	fail(w, http.StatusForbidden, message, "Forbidden")
}

func NotFound(w http.ResponseWriter, message string) {
	fail(w, http.StatusNotFound, message, "Resource not found")
}

func Conflict(w http.ResponseWriter, message string) {
	fail(w, http.StatusConflict, message, "Conflict")
}

func InternalServerError(w http.ResponseWriter, message string) {
	fail(w, http.StatusInternalServerError, message, "Internal server error")
}

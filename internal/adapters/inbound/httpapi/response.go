package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smellview/smellview/internal/domain"
)

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// SendJSON writes data as JSON with the given status code.
func SendJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// SendError sends an error response
func SendError(w http.ResponseWriter, message string, statusCode int) {
	SendJSON(w, statusCode, Response{Success: false, Message: message})
}

// SendSuccess sends a success response
func SendSuccess(w http.ResponseWriter, data any) {
	SendJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// SendDomainError maps domain sentinels onto HTTP status codes.
func SendDomainError(w http.ResponseWriter, err error) {
	SendError(w, err.Error(), statusFor(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

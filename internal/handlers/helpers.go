package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ternarybob/localeyes/internal/models"
)

var validate = validator.New()

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a standard success JSON response.
func WriteSuccess(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": message,
	})
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// DecodeAndValidate decodes a JSON request body into dst and runs struct
// validation. A false return means the error response has been written.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return false
	}
	return true
}

// ClientID identifies the calling client for history scoping. Clients that
// do not send the header share the default scope.
func ClientID(r *http.Request) string {
	if id := r.Header.Get("X-Client-ID"); id != "" {
		return id
	}
	return "default"
}

// WriteServiceError maps a service-layer error onto the HTTP status and
// user-facing message for its kind.
func WriteServiceError(w http.ResponseWriter, err error) {
	var configErr *models.ConfigurationError
	var upstreamErr *models.UpstreamRequestError
	var unavailableErr *models.BackendUnavailableError
	var schemaErr *models.SchemaValidationError

	switch {
	case errors.As(err, &configErr):
		WriteError(w, http.StatusInternalServerError, configErr.Error())
	case errors.As(err, &upstreamErr):
		WriteError(w, http.StatusBadGateway,
			fmt.Sprintf("The places service returned status %d", upstreamErr.StatusCode))
	case errors.As(err, &unavailableErr):
		WriteError(w, http.StatusServiceUnavailable,
			"The AI service is busy right now. Please try again shortly.")
	case errors.As(err, &schemaErr):
		WriteError(w, http.StatusBadGateway,
			"The AI service returned an unexpected response. Please try again.")
	default:
		WriteError(w, http.StatusInternalServerError, "Request failed")
	}
}

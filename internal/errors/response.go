package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Payload is the JSON body of every error response.
type Payload struct {
	Error PayloadError `json:"error"`
}

// PayloadError is the client-visible part of an error.
type PayloadError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ToPayload converts err to its client-visible form. Causes of internal
// errors are not exposed.
func ToPayload(err error) Payload {
	var ae *APIError
	if !errors.As(err, &ae) {
		return Payload{Error: PayloadError{
			Code:    ErrCodeInternalError,
			Message: "internal server error",
		}}
	}

	return Payload{Error: PayloadError{
		Code:    ae.Code,
		Message: ae.Message,
		Details: ae.Context,
	}}
}

// WriteJSON writes err as a JSON error response with its mapped status.
func WriteJSON(w http.ResponseWriter, err error) error {
	var ae *APIError
	if errors.As(err, &ae) && ae.Type == ErrorTypeMethod {
		if allowed, ok := ae.Context["allowed"].([]string); ok && len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOf(err))

	return json.NewEncoder(w).Encode(ToPayload(err))
}

// Package response provides utilities for sending consistent HTTP responses.
// Successful payloads are wrapped in a {"data": ...} envelope; failures use ErrorResponse.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
	"github.com/ndewijer/TradeLog-Backend/internal/validation"
)

// ErrorResponse represents a structured error response returned by the API.
// The Details field is optional and can contain additional context about the error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// DataResponse is the success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// RespondJSON sends a JSON response with the given status code.
// Sets the Content-Type header to application/json and writes the status code.
// Logs encoding errors but does not fail the response.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error().Err(err).Msg("failed to encode JSON response")
		}
	}
}

// RespondData sends data wrapped in the {"data": ...} envelope.
// A nil data is sent as {"data": null}.
func RespondData(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, DataResponse{Data: data})
}

// RespondError sends a structured error response with the given status code.
// The message should be a user-friendly error description.
// The details parameter can be an error string, a list of messages, or nil.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
//	response.RespondError(w, http.StatusNotFound, "resource not found", nil)
func RespondError(w http.ResponseWriter, status int, message string, details any) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// RespondServiceError maps err onto a status code by its apperrors kind:
//
//	NotFound   -> 404, message is the not found error itself
//	Validation -> 400, details lists the field messages
//	Conflict   -> 409
//	otherwise  -> 500, message is fallback
//
// Internal errors are logged with the request logger.
func RespondServiceError(w http.ResponseWriter, r *http.Request, fallback error, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		RespondError(w, http.StatusNotFound, err.Error(), nil)
	case apperrors.KindValidation:
		var verr *validation.Error
		if errors.As(err, &verr) {
			RespondError(w, http.StatusBadRequest, "validation failed", verr.Messages())
			return
		}
		RespondError(w, http.StatusBadRequest, "validation failed", []string{err.Error()})
	case apperrors.KindConflict:
		RespondError(w, http.StatusConflict, "request conflicts with stored data", err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(fallback.Error())
		RespondError(w, http.StatusInternalServerError, fallback.Error(), err.Error())
	}
}

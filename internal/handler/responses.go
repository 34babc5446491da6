package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteBufferFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceError, opName), "error", err)
	} else {
		log.Warn(fmt.Sprintf(LogMsgServiceError, opName), "error", err, "status", statusCode)
	}

	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgResourceNotFoundErr = "Resource not found."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	// Lottery messages
	ErrMsgInvalidGameTypeError = "Unknown game type. Valid games: powerball, mega-millions, pick-6, pick-3"

	// Encounter messages
	ErrMsgEncounterNotFoundError = "Encounter not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// errors.Is walks the whole wrap chain
	switch {
	case errors.Is(err, domain.ErrInvalidGameType):
		return http.StatusBadRequest, ErrMsgInvalidGameTypeError
	case errors.Is(err, domain.ErrEncounterNotFound):
		return http.StatusNotFound, ErrMsgEncounterNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	// Internal details never reach the client
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

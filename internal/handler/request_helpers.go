package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/logger"
	"github.com/osse101/LuckyGen_Go/internal/lottery"
)

// QueryParamGame filters list endpoints to one game type
const QueryParamGame = "game"

// DecodeAndValidateRequest decodes a JSON body into req and runs the struct validator.
// On failure the 400 response is already written and the handler should return.
//
//	var req GenerateNumbersRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Generate numbers"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	if decoder.More() {
		err := errors.New(ErrMsgTrailingData)
		log.Warn(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse lists the offending fields of a rejected request
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// ParseGameQuery reads the optional ?game= filter. Empty means every game;
// anything else must be a known game type.
func ParseGameQuery(r *http.Request) (domain.GameType, error) {
	game := domain.GameType(strings.ToLower(GetOptionalQueryParam(r, QueryParamGame, "")))
	if game == "" {
		return "", nil
	}
	if _, err := lottery.LookupGame(game); err != nil {
		return "", err
	}
	return game, nil
}

// LogRequestFields logs request details at debug level as key/value pairs
func LogRequestFields(log *slog.Logger, keyvals ...any) {
	if len(keyvals)%2 != 0 {
		log.Warn(LogMsgOddLogArgs)
		return
	}
	log.Debug(LogMsgRequestDetails, keyvals...)
}

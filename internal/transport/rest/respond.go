package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// maxBodyBytes bounds request bodies, imports included.
const maxBodyBytes = 4 << 20

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps a service error to a status code and error body. Partial
// cascades are not errors to the client: they answer 207 with the report.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var pce *domain.PartialCascadeError
	if errors.As(err, &pce) {
		writeJSON(w, http.StatusMultiStatus, newReportDTO(pce.Report))
		return
	}

	status, code := classify(err)
	body := ErrorBody{Code: code, Message: err.Error()}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Message = "validation failed"
		for _, fe := range ve.Errors {
			body.Fields = append(body.Fields, FieldError{Field: fe.Field, Message: fe.Message})
		}
	}

	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		if status == http.StatusInternalServerError {
			body.Message = "internal error"
		}
	}

	writeJSON(w, status, ErrorResponse{Error: body})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "ALREADY_EXISTS"
	case errors.Is(err, domain.ErrAlreadyReversed):
		return http.StatusConflict, "ALREADY_REVERSED"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "STORE_UNAVAILABLE"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

// decodeJSON reads a JSON body into dst. Unknown fields are rejected so typos
// in patch documents do not silently change nothing.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}

// pathID parses the {name} path value as a UUID.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

// page reads ?limit=&offset= with the given default limit.
func page(r *http.Request, defaultLimit int) (limit, offset int, err error) {
	limit, offset = defaultLimit, 0
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 1 || limit > 500 {
			return 0, 0, domain.NewValidationError("limit", "must be between 1 and 500")
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, domain.NewValidationError("offset", "must not be negative")
		}
	}
	return limit, offset, nil
}

const defaultPageSize = 50

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/sbilibin2017/library-api/internal/logger"
	"github.com/sbilibin2017/library-api/internal/models"
	"github.com/sbilibin2017/library-api/internal/services"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errInvalidJSON = errors.New("invalid JSON body")

// bookFields are the body fields that must not be sent as an explicit null.
var bookFields = []string{"name", "author", "publishedYear", "description"}

const (
	msgInvalidRequest = "Invalid request"
	msgInvalidJSON    = "Invalid JSON body"
	msgNotFound       = "Book not found"
	msgAlreadyExists  = "Book with this name already exists"
	msgInternal       = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

// writeError maps validation and domain errors to their responses. Anything
// else is logged and reported as 500.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, errInvalidJSON):
		logger.Log.Debugw(op+" rejected", "uri", r.RequestURI, "error", err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidJSON})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidRequest, Fields: validationErr.Fields})
	case errors.Is(err, services.ErrBookNotFound):
		writeText(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, services.ErrBookAlreadyExists):
		writeText(w, http.StatusConflict, msgAlreadyExists)
	default:
		logger.Log.Errorw(op+" failed", "method", r.Method, "uri", r.RequestURI, "error", err)
		writeText(w, http.StatusInternalServerError, msgInternal)
	}
}

// decodeBody unmarshals the request body into v. An explicit null for any
// book field is a validation error; an omitted field is not.
func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	}

	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	}

	fields := map[string]string{}
	for _, name := range bookFields {
		if value, ok := raw[name]; ok && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			fields[name] = "notnull"
		}
	}
	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}

// bookID reads the {id} path parameter.
func bookID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, models.NewValidationError("id", "numeric")
	}
	return id, nil
}

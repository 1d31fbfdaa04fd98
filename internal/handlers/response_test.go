package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/library-api/internal/models"
	"github.com/sbilibin2017/library-api/internal/services"
)

// withURLParam attaches a chi route context carrying the {id} parameter.
func withURLParam(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedType string
		expectedBody string
	}{
		{
			name:         "validation",
			err:          models.NewValidationError("name", "required"),
			expectedCode: http.StatusBadRequest,
			expectedType: "application/json",
			expectedBody: `{"error":"Invalid request","fields":{"name":"required"}}`,
		},
		{
			name:         "malformed body",
			err:          errInvalidJSON,
			expectedCode: http.StatusBadRequest,
			expectedType: "application/json",
			expectedBody: `{"error":"Invalid JSON body"}`,
		},
		{
			name:         "not found",
			err:          services.ErrBookNotFound,
			expectedCode: http.StatusNotFound,
			expectedType: "text/plain; charset=utf-8",
			expectedBody: "Book not found",
		},
		{
			name:         "conflict",
			err:          services.ErrBookAlreadyExists,
			expectedCode: http.StatusConflict,
			expectedType: "text/plain; charset=utf-8",
			expectedBody: "Book with this name already exists",
		},
		{
			name:         "unclassified",
			err:          errors.New("connection refused"),
			expectedCode: http.StatusInternalServerError,
			expectedType: "text/plain; charset=utf-8",
			expectedBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/books", nil), "test", tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedType, rr.Header().Get("Content-Type"))
			if tt.expectedType == "application/json" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
				return
			}
			assert.Equal(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestBookID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "42", want: 42},
		{raw: "abc", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest(http.MethodGet, "/books/"+tt.raw, nil), tt.raw)
			id, err := bookID(req)
			if tt.wantErr {
				var validationErr *models.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "numeric", validationErr.Fields["id"])
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestRootAndHealthHandlers(t *testing.T) {
	rr := httptest.NewRecorder()
	NewRootHandler()(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hello Library API!", rr.Body.String())

	rr = httptest.NewRecorder()
	NewHealthHandler("test")(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","environment":"test"}`, rr.Body.String())
}

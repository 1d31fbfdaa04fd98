package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/library-api/internal/models"
	"github.com/sbilibin2017/library-api/internal/services"
)

func TestUpdateBookHandler(t *testing.T) {
	name := "B"

	tests := []struct {
		name               string
		id                 string
		body               string
		setupMocks         func(m *MockBookUpdater)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name: "rename",
			id:   "1",
			body: `{"name":"B"}`,
			setupMocks: func(m *MockBookUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(1), models.UpdateBookRequest{Name: &name}).
					Return(&models.Book{ID: 1, Name: "B", Author: "X"}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "empty name rejected",
			id:                 "1",
			body:               `{"name":""}`,
			setupMocks:         func(m *MockBookUpdater) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"Invalid request","fields":{"name":"min"}}`,
		},
		{
			name:               "explicit null year rejected",
			id:                 "1",
			body:               `{"publishedYear":null}`,
			setupMocks:         func(m *MockBookUpdater) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"Invalid request","fields":{"publishedYear":"notnull"}}`,
		},
		{
			name:               "explicit null description rejected",
			id:                 "1",
			body:               `{"name":"B","description": null }`,
			setupMocks:         func(m *MockBookUpdater) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"Invalid request","fields":{"description":"notnull"}}`,
		},
		{
			name:               "invalid id",
			id:                 "x",
			body:               `{"name":"B"}`,
			setupMocks:         func(m *MockBookUpdater) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"Invalid request","fields":{"id":"numeric"}}`,
		},
		{
			name:               "malformed json",
			id:                 "1",
			body:               `[`,
			setupMocks:         func(m *MockBookUpdater) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"Invalid JSON body"}`,
		},
		{
			name: "not found",
			id:   "5",
			body: `{"author":"Y"}`,
			setupMocks: func(m *MockBookUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(nil, services.ErrBookNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "name conflict",
			id:   "1",
			body: `{"name":"B"}`,
			setupMocks: func(m *MockBookUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(nil, services.ErrBookAlreadyExists)
			},
			expectedStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockBookUpdater(ctrl)
			tt.setupMocks(m)

			req := httptest.NewRequest(http.MethodPut, "/books/"+tt.id, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			NewUpdateBookHandler(m)(rr, withURLParam(req, tt.id))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

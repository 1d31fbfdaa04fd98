package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/library-api/internal/repositories"
	"github.com/sbilibin2017/library-api/internal/services"
	"github.com/sbilibin2017/library-api/internal/storage/storagetest"
)

func TestRouter_BookLifecycle(t *testing.T) {
	db, _ := storagetest.NewPostgres(t)

	svc := services.NewBookService(repositories.NewBookReadRepository(db), repositories.NewBookWriteRepository(db))
	srv := httptest.NewServer(New(svc, Options{Environment: "test", StaticToken: testToken}))
	defer srv.Close()

	do := func(method, path, body string) (int, string) {
		t.Helper()
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req, err := http.NewRequest(method, srv.URL+path, reader)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+testToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(data)
	}

	status, body := do(http.MethodPost, "/books", `{"name":"A","author":"X"}`)
	require.Equal(t, http.StatusCreated, status, body)
	assert.Contains(t, body, `"id":1`)
	assert.Contains(t, body, `"publishedYear":null`)
	assert.Contains(t, body, `"description":null`)

	status, body = do(http.MethodPost, "/books", `{"name":"A","author":"Y"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Book with this name already exists", body)

	status, body = do(http.MethodGet, "/books/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"name":"A"`)
	assert.Contains(t, body, `"author":"X"`)

	status, body = do(http.MethodPut, "/books/1", `{"name":"B"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"name":"B"`)
	assert.Contains(t, body, `"author":"X"`)

	status, body = do(http.MethodGet, "/books?page=1&pageSize=10", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"totalItems":1`)
	assert.Contains(t, body, `"totalPages":1`)

	status, body = do(http.MethodDelete, "/books/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"success":true}`, body)

	status, body = do(http.MethodGet, "/books/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Book not found", body)

	status, _ = do(http.MethodDelete, "/books/1", "")
	assert.Equal(t, http.StatusNotFound, status)
}

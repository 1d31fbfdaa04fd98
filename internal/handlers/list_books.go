package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/library-api/internal/models"
)

//go:generate mockgen -source=list_books.go -destination=mock_list_books.go -package=handlers

// BookLister defines the service method used by the list handler.
type BookLister interface {
	List(ctx context.Context, q models.ListBooksQuery) (*models.BookList, error)
}

// NewListBooksHandler returns a page of books ordered by name.
// @Summary List books
// @Description Paginated list ordered by name. limit is an alias of pageSize, offset overrides the page offset.
// @Tags books
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param pageSize query int false "Items per page (1-100)"
// @Param limit query int false "Alias of pageSize"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} models.BookList
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /books [get]
// @Security BearerAuth
func NewListBooksHandler(svc BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseListQuery(r)
		if err != nil {
			writeError(w, r, "list books", err)
			return
		}
		if err := q.Validate(); err != nil {
			writeError(w, r, "list books", err)
			return
		}

		list, err := svc.List(r.Context(), q)
		if err != nil {
			writeError(w, r, "list books", err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func parseListQuery(r *http.Request) (models.ListBooksQuery, error) {
	values := r.URL.Query()
	fields := map[string]string{}

	parse := func(key string) *int {
		raw := values.Get(key)
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields[key] = "numeric"
			return nil
		}
		return &n
	}

	q := models.ListBooksQuery{
		Page:     parse("page"),
		PageSize: parse("pageSize"),
		Limit:    parse("limit"),
		Offset:   parse("offset"),
	}
	if len(fields) > 0 {
		return q, &models.ValidationError{Fields: fields}
	}
	return q, nil
}

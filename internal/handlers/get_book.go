package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/library-api/internal/models"
)

//go:generate mockgen -source=get_book.go -destination=mock_get_book.go -package=handlers

// BookGetter defines the service method used by the get handler.
type BookGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Book, error)
}

// NewGetBookHandler returns a single book.
// @Summary Get book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} models.Book
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Book not found"
// @Router /books/{id} [get]
// @Security BearerAuth
func NewGetBookHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bookID(r)
		if err != nil {
			writeError(w, r, "get book", err)
			return
		}

		book, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, r, "get book", err)
			return
		}

		writeJSON(w, http.StatusOK, book)
	}
}

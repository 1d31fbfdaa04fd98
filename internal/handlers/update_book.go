package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/library-api/internal/models"
)

//go:generate mockgen -source=update_book.go -destination=mock_update_book.go -package=handlers

// BookUpdater defines the service method used by the update handler.
type BookUpdater interface {
	Update(ctx context.Context, id int64, req models.UpdateBookRequest) (*models.Book, error)
}

// NewUpdateBookHandler applies a partial update. Omitted fields keep their values.
// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param request body models.UpdateBookRequest true "Fields to change"
// @Success 200 {object} models.Book
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Book not found"
// @Failure 409 {string} string "Book with this name already exists"
// @Router /books/{id} [put]
// @Security BearerAuth
func NewUpdateBookHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bookID(r)
		if err != nil {
			writeError(w, r, "update book", err)
			return
		}

		var req models.UpdateBookRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, "update book", err)
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, r, "update book", err)
			return
		}

		book, err := svc.Update(r.Context(), id, req)
		if err != nil {
			writeError(w, r, "update book", err)
			return
		}

		writeJSON(w, http.StatusOK, book)
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/library-api/internal/models"
)

//go:generate mockgen -source=delete_book.go -destination=mock_delete_book.go -package=handlers

// BookDeleter defines the service method used by the delete handler.
type BookDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteBookHandler removes a book permanently.
// @Summary Delete book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} models.DeleteBookResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Book not found"
// @Router /books/{id} [delete]
// @Security BearerAuth
func NewDeleteBookHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bookID(r)
		if err != nil {
			writeError(w, r, "delete book", err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, "delete book", err)
			return
		}

		writeJSON(w, http.StatusOK, models.DeleteBookResponse{Success: true})
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/library-api/internal/models"
)

//go:generate mockgen -source=create_book.go -destination=mock_create_book.go -package=handlers

// BookCreator defines the service method used by the create handler.
type BookCreator interface {
	Create(ctx context.Context, req models.CreateBookRequest) (*models.Book, error)
}

// NewCreateBookHandler inserts a new book.
// @Summary Create book
// @Description Name must be unique. publishedYear and description default to null.
// @Tags books
// @Accept json
// @Produce json
// @Param request body models.CreateBookRequest true "Book"
// @Success 201 {object} models.Book
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 409 {string} string "Book with this name already exists"
// @Router /books [post]
// @Security BearerAuth
func NewCreateBookHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateBookRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, "create book", err)
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, r, "create book", err)
			return
		}

		book, err := svc.Create(r.Context(), req)
		if err != nil {
			writeError(w, r, "create book", err)
			return
		}

		writeJSON(w, http.StatusCreated, book)
	}
}

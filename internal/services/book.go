package services

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/library-api/internal/logger"
	"github.com/sbilibin2017/library-api/internal/models"
	"github.com/sbilibin2017/library-api/internal/repositories"
)

//go:generate mockgen -source=book.go -destination=mock_book.go -package=services

// Error variables
var (
	ErrBookNotFound      = errors.New("book not found")
	ErrBookAlreadyExists = errors.New("book with this name already exists")
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// BookReader defines read-only operations for books.
type BookReader interface {
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	GetByName(ctx context.Context, name string) (*models.Book, error)
	List(ctx context.Context, limit, offset int) ([]models.Book, error)
	Count(ctx context.Context) (int64, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Insert(ctx context.Context, req models.CreateBookRequest) (*models.Book, error)
	Update(ctx context.Context, id int64, req models.UpdateBookRequest) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
}

// BookService implements the book catalogue operations.
// The duplicate-name lookups are a fast path; the unique constraint
// on books.name is the final guard and maps to ErrBookAlreadyExists too.
type BookService struct {
	reader BookReader
	writer BookWriter
}

// NewBookService creates a new BookService instance.
func NewBookService(reader BookReader, writer BookWriter) *BookService {
	return &BookService{
		reader: reader,
		writer: writer,
	}
}

// List returns one page of books ordered by name together with pagination info.
func (svc *BookService) List(ctx context.Context, q models.ListBooksQuery) (*models.BookList, error) {
	page, pageSize, offset := resolvePage(q)

	var (
		books []models.Book
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = svc.reader.List(gctx, pageSize, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = svc.reader.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to list books", "page", page, "pageSize", pageSize, "offset", offset, "err", err)
		return nil, err
	}

	if books == nil {
		books = []models.Book{}
	}

	return &models.BookList{
		Data: books,
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
		},
	}, nil
}

// resolvePage applies the defaults: page 1, pageSize from pageSize, then
// limit, then 10, and offset from (page-1)*pageSize unless given explicitly.
func resolvePage(q models.ListBooksQuery) (page, pageSize, offset int) {
	page = defaultPage
	if q.Page != nil {
		page = *q.Page
	}

	switch {
	case q.PageSize != nil:
		pageSize = *q.PageSize
	case q.Limit != nil:
		pageSize = *q.Limit
	default:
		pageSize = defaultPageSize
	}

	// Saturate instead of wrapping to a negative offset for huge pages.
	if page-1 > math.MaxInt/pageSize {
		offset = math.MaxInt
	} else {
		offset = (page - 1) * pageSize
	}
	if q.Offset != nil {
		offset = *q.Offset
	}

	return page, pageSize, offset
}

// GetByID returns a single book.
func (svc *BookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	book, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "id", id, "err", err)
		return nil, err
	}
	if book == nil {
		logger.Log.Debugw("book not found", "id", id)
		return nil, ErrBookNotFound
	}

	return book, nil
}

// Create stores a new book after checking that its name is free.
func (svc *BookService) Create(ctx context.Context, req models.CreateBookRequest) (*models.Book, error) {
	if err := svc.ensureNameFree(ctx, req.Name); err != nil {
		return nil, err
	}

	book, err := svc.writer.Insert(ctx, req)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			logger.Log.Debugw("book name taken at insert", "name", req.Name)
			return nil, ErrBookAlreadyExists
		}
		logger.Log.Errorw("failed to insert book", "name", req.Name, "err", err)
		return nil, err
	}

	logger.Log.Infow("book created", "id", book.ID, "name", book.Name)
	return book, nil
}

// Update applies a partial update to an existing book.
func (svc *BookService) Update(ctx context.Context, id int64, req models.UpdateBookRequest) (*models.Book, error) {
	existing, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != existing.Name {
		if err := svc.ensureNameFree(ctx, *req.Name); err != nil {
			return nil, err
		}
	}

	book, err := svc.writer.Update(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			logger.Log.Debugw("book removed before update", "id", id)
			return nil, ErrBookNotFound
		case errors.Is(err, repositories.ErrDuplicateName):
			logger.Log.Debugw("book name taken at update", "id", id)
			return nil, ErrBookAlreadyExists
		default:
			logger.Log.Errorw("failed to update book", "id", id, "err", err)
			return nil, err
		}
	}

	logger.Log.Infow("book updated", "id", book.ID)
	return book, nil
}

// Delete permanently removes a book.
func (svc *BookService) Delete(ctx context.Context, id int64) error {
	if _, err := svc.GetByID(ctx, id); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Debugw("book removed before delete", "id", id)
			return ErrBookNotFound
		}
		logger.Log.Errorw("failed to delete book", "id", id, "err", err)
		return err
	}

	logger.Log.Infow("book deleted", "id", id)
	return nil
}

func (svc *BookService) ensureNameFree(ctx context.Context, name string) error {
	existing, err := svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to check book name", "name", name, "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Debugw("book already exists", "name", name)
		return ErrBookAlreadyExists
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/library-api/internal/logger"
	"github.com/sbilibin2017/library-api/internal/models"
)

var (
	// ErrNotFound is returned by writes that matched no row.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateName is returned when a write violates the unique name constraint.
	ErrDuplicateName = errors.New("book name already exists")
	// ErrBuildingQuery is joined with query builder failures.
	ErrBuildingQuery = errors.New("building query failed")
)

const (
	booksTable = "books"

	colID            = "id"
	colName          = "name"
	colAuthor        = "author"
	colPublishedYear = "published_year"
	colDescription   = "description"
	colCreatedAt     = "created_at"
	colUpdatedAt     = "updated_at"

	pgUniqueViolation = "23505"
)

var (
	dialect     = goqu.Dialect("postgres")
	bookColumns = []any{colID, colName, colAuthor, colPublishedYear, colDescription, colCreatedAt, colUpdatedAt}
)

// BookReadRepository runs read-only queries against the books table.
type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

// GetByID returns the book with the given id, or nil when there is none.
func (r *BookReadRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	return r.getOne(ctx, dialect.From(booksTable).Select(bookColumns...).Where(goqu.C(colID).Eq(id)))
}

// GetByName returns the book with the given name, or nil when there is none.
func (r *BookReadRepository) GetByName(ctx context.Context, name string) (*models.Book, error) {
	return r.getOne(ctx, dialect.From(booksTable).Select(bookColumns...).Where(goqu.C(colName).Eq(name)))
}

func (r *BookReadRepository) getOne(ctx context.Context, ds *goqu.SelectDataset) (*models.Book, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Join(ErrBuildingQuery, err)
	}

	var book models.Book
	err = r.db.GetContext(ctx, &book, query, args...)
	logQuery(query, args, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select book: %w", err)
	}

	return &book, nil
}

// List returns up to limit books ordered by name, skipping offset rows.
func (r *BookReadRepository) List(ctx context.Context, limit, offset int) ([]models.Book, error) {
	query, args, err := dialect.From(booksTable).
		Select(bookColumns...).
		Order(goqu.C(colName).Asc()).
		Limit(uint(limit)).
		Offset(uint(offset)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, errors.Join(ErrBuildingQuery, err)
	}

	books := make([]models.Book, 0, limit)
	err = r.db.SelectContext(ctx, &books, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

// Count returns the total number of stored books.
func (r *BookReadRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := dialect.From(booksTable).
		Select(goqu.COUNT(goqu.Star())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, errors.Join(ErrBuildingQuery, err)
	}

	var total int64
	err = r.db.GetContext(ctx, &total, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}

	return total, nil
}

// BookWriteRepository runs inserts, updates and deletes against the books table.
type BookWriteRepository struct {
	db *sqlx.DB
}

func NewBookWriteRepository(db *sqlx.DB) *BookWriteRepository {
	return &BookWriteRepository{db: db}
}

// Insert stores a new book and returns the persisted row.
// Absent optional fields are stored as NULL.
func (r *BookWriteRepository) Insert(ctx context.Context, req models.CreateBookRequest) (*models.Book, error) {
	query, args, err := dialect.Insert(booksTable).
		Rows(goqu.Record{
			colName:          req.Name,
			colAuthor:        req.Author,
			colPublishedYear: nullable(req.PublishedYear),
			colDescription:   nullable(req.Description),
		}).
		Returning(bookColumns...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, errors.Join(ErrBuildingQuery, err)
	}

	var book models.Book
	err = r.db.GetContext(ctx, &book, query, args...)
	logQuery(query, args, err)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("insert book: %w", err)
	}

	return &book, nil
}

// Update applies the supplied fields to the book with the given id and
// always refreshes updated_at. Returns ErrNotFound when no row matches.
func (r *BookWriteRepository) Update(ctx context.Context, id int64, req models.UpdateBookRequest) (*models.Book, error) {
	record := goqu.Record{colUpdatedAt: goqu.L("NOW()")}
	if req.Name != nil {
		record[colName] = *req.Name
	}
	if req.Author != nil {
		record[colAuthor] = *req.Author
	}
	if req.PublishedYear != nil {
		record[colPublishedYear] = *req.PublishedYear
	}
	if req.Description != nil {
		record[colDescription] = *req.Description
	}

	query, args, err := dialect.Update(booksTable).
		Set(record).
		Where(goqu.C(colID).Eq(id)).
		Returning(bookColumns...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, errors.Join(ErrBuildingQuery, err)
	}

	var book models.Book
	err = r.db.GetContext(ctx, &book, query, args...)
	logQuery(query, args, err)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case isUniqueViolation(err):
		return nil, ErrDuplicateName
	case err != nil:
		return nil, fmt.Errorf("update book: %w", err)
	}

	return &book, nil
}

// Delete removes the book with the given id. Returns ErrNotFound when no row matches.
func (r *BookWriteRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := dialect.Delete(booksTable).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return errors.Join(ErrBuildingQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logQuery(query, args, err)
		return fmt.Errorf("delete book: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	logQuery(query, args, err, "result", rowsAffected)
	if err != nil {
		return fmt.Errorf("delete book rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// logQuery logs the statement on a single line.
func logQuery(query string, args []any, err error, extra ...any) {
	kv := append([]any{
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	}, extra...)
	logger.Log.Debugw("sql", kv...)
}

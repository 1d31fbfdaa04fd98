package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/library-api/docs"
	"github.com/sbilibin2017/library-api/internal/handlers"
	"github.com/sbilibin2017/library-api/internal/logger"
	"github.com/sbilibin2017/library-api/internal/middlewares"
	"github.com/sbilibin2017/library-api/internal/models"
	"github.com/sbilibin2017/library-api/internal/token"
)

//go:generate mockgen -source=router.go -destination=mock_book_service.go -package=router

// BookService is everything the /books routes need.
type BookService interface {
	List(ctx context.Context, q models.ListBooksQuery) (*models.BookList, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, req models.CreateBookRequest) (*models.Book, error)
	Update(ctx context.Context, id int64, req models.UpdateBookRequest) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
}

// Options configures the router.
type Options struct {
	Environment string
	Production  bool
	StaticToken string
}

// New builds the HTTP handler. Everything under /books requires the static
// bearer token; API docs are served outside production only.
func New(svc BookService, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(opts.Production))

	r.Get("/", handlers.NewRootHandler())
	r.Get("/health", handlers.NewHealthHandler(opts.Environment))

	if !opts.Production {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	r.Route("/books", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(token.New(opts.StaticToken)))
		r.Get("/", handlers.NewListBooksHandler(svc))
		r.Post("/", handlers.NewCreateBookHandler(svc))
		r.Get("/{id}", handlers.NewGetBookHandler(svc))
		r.Put("/{id}", handlers.NewUpdateBookHandler(svc))
		r.Delete("/{id}", handlers.NewDeleteBookHandler(svc))
	})

	return r
}

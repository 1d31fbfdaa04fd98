package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/library-api/internal/logger"
	"github.com/sbilibin2017/library-api/internal/token"
)

//go:generate mockgen -source=auth.go -destination=mock_tokener.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// AuthMiddleware returns a middleware that rejects requests without a valid bearer token.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Debugw("authorization failed", "uri", r.RequestURI, "err", err)
				unauthorized(w, err)
				return
			}

			if err := tokener.Validate(ctx, tokenString); err != nil {
				logger.Log.Debugw("authorization failed", "uri", r.RequestURI, "err", err)
				unauthorized(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, err error) {
	msg := "Unauthorized: Invalid token"
	switch {
	case errors.Is(err, token.ErrMissingHeader):
		msg = "Unauthorized: Missing Authorization header"
	case errors.Is(err, token.ErrInvalidFormat):
		msg = "Unauthorized: Invalid Authorization header format"
	}
	http.Error(w, msg, http.StatusUnauthorized)
}

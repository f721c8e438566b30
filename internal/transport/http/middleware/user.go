package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"staffdir/internal/domain/auth"
	"staffdir/internal/requestctx"
	"staffdir/internal/transport/http/api"
)

type UserSource interface {
	CurrentUser(ctx context.Context) (auth.User, error)
}

// CurrentUser places the session's fixed user in the request context.
func CurrentUser(source UserSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := source.CurrentUser(r.Context())
			if err != nil {
				slog.Error("resolve current user failed", "err", err, "requestId", GetRequestID(r.Context()))
				api.Fail(w, http.StatusInternalServerError, "internal_error", "Internal server error", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r.WithContext(requestctx.WithUser(r.Context(), user)))
		})
	}
}

func GetUser(ctx context.Context) (auth.User, bool) {
	return requestctx.GetUser(ctx)
}

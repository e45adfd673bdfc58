package handlers

import (
	"context"
	"net/http"

	"github.com/rwidjaja/contactbook/internal/models"
	"github.com/rwidjaja/contactbook/internal/service"
)

// TokenHeader carries the session token on every authenticated request.
const TokenHeader = "X-API-TOKEN"

type contextKey string

const userKey contextKey = "auth.user"

// Auth resolves the request token to a user snapshot and injects it into
// the request context. Expiry is checked but never extended.
func Auth(users *service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := users.Authenticate(r.Header.Get(TokenHeader))
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user placed by Auth, or nil
// on an unprotected route.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// SessionCookieName is the cookie the auth handlers set; the middleware
// accepts it interchangeably with a bearer header.
const SessionCookieName = "auth_token"

// AuthMiddleware validates the caller's session before any protected handler
// runs and injects the account id into the request context. Token is read
// from "Authorization: Bearer <token>" or, failing that, the session cookie.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			if c, err := r.Cookie(SessionCookieName); err == nil {
				token = c.Value
			}
		}
		if token == "" {
			WriteError(w, fmt.Errorf("%w: missing session token", ErrUnauthorized))
			return
		}

		claims, err := ValidateToken(token)
		if err != nil {
			WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, claims.AccountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// AccountIDFromContext returns the authenticated account id injected by
// AuthMiddleware.
func AccountIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(accountIDKey).(uint64)
	return id, ok
}

// ContextWithAccountID is used by tests and internal callers to act as an
// authenticated account.
func ContextWithAccountID(ctx context.Context, accountID uint64) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

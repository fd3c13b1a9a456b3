package middleware

import (
	"context"
	"net/http"

	"github.com/rohits-web03/clubhouse/internal/logging"
	"github.com/rohits-web03/clubhouse/internal/services"
	"github.com/rohits-web03/clubhouse/internal/utils"
)

type contextKey string

const identityKey contextKey = "identity"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (services.Identity, error)
}

// Identify resolves the session cookie on every request and stores the
// result, possibly services.Anonymous, on the request context. It never
// rejects a request for being anonymous; routes decide that themselves.
func Identify(resolver IdentityResolver, log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token := ""
			if c, err := r.Cookie(SessionCookieName); err == nil {
				token = c.Value
			}

			identity, err := resolver.ResolveIdentity(r.Context(), token)
			if err != nil {
				log.Error(r.Context(), "failed to resolve session", "error", err)
				utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
					Success: false,
					Message: "Failed to resolve session",
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func WithIdentity(ctx context.Context, identity services.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom returns the identity stored by Identify, or Anonymous.
func IdentityFrom(ctx context.Context) services.Identity {
	if identity, ok := ctx.Value(identityKey).(services.Identity); ok {
		return identity
	}
	return services.Anonymous
}

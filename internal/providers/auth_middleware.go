package providers

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type contextKey int

const identityKey contextKey = 0

// AuthMiddleware resolves the caller's bearer token and stores the identity in
// the request context. Requests without a valid token pass through unresolved;
// controllers decide whether an identity is required for their route.
func AuthMiddleware(identity IdentityProviderInterface, logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token != "" {
			who, err := identity.Verify(r.Context(), token)
			if err == nil {
				r = r.WithContext(context.WithValue(r.Context(), identityKey, who))
			} else if !errors.Is(err, ErrNotSignedIn) {
				logger.Errorf(GetLogTypeByRequestType(r.Method), "identity verification failed: %s", err)
				http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// IdentityFromContext returns the resolved identity, or nil when signed out.
func IdentityFromContext(ctx context.Context) *Identity {
	who, _ := ctx.Value(identityKey).(*Identity)
	return who
}

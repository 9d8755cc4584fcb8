package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authTestProvider struct {
	identity *Identity
	err      error
}

func (p *authTestProvider) Verify(_ context.Context, _ string) (*Identity, error) {
	return p.identity, p.err
}

func captureIdentity(dst **Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*dst = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ResolvesBearerToken(t *testing.T) {
	var seen *Identity
	mw := AuthMiddleware(&authTestProvider{identity: &Identity{ID: "u1"}}, &cacheTestLogger{}, captureIdentity(&seen))

	req := httptest.NewRequest(http.MethodGet, "/api/at-bats", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.ID)
}

func TestAuthMiddleware_NoTokenPassesThroughUnresolved(t *testing.T) {
	var seen *Identity
	mw := AuthMiddleware(&authTestProvider{identity: &Identity{ID: "u1"}}, &cacheTestLogger{}, captureIdentity(&seen))

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, seen)
}

func TestAuthMiddleware_RejectedTokenPassesThroughUnresolved(t *testing.T) {
	var seen *Identity
	mw := AuthMiddleware(&authTestProvider{err: ErrNotSignedIn}, &cacheTestLogger{}, captureIdentity(&seen))

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, seen)
}

func TestAuthMiddleware_ProviderFailureIs503(t *testing.T) {
	var seen *Identity
	mw := AuthMiddleware(&authTestProvider{err: errors.New("provider unreachable")}, &cacheTestLogger{}, captureIdentity(&seen))

	req := httptest.NewRequest(http.MethodGet, "/api/at-bats", nil)
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Nil(t, seen)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", bearerToken(req))

	req.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, "abc", bearerToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "", bearerToken(req))
}

func TestIdentityFromContext_Empty(t *testing.T) {
	assert.Nil(t, IdentityFromContext(context.Background()))
}

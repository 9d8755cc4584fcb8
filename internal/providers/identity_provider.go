package providers

import (
	"batlog/internal/structures"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Identity is the signed-in user as reported by the external identity provider.
// It is the sole source of record ownership.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

var ErrNotSignedIn = errors.New("not signed in")

type IdentityProviderInterface interface {
	// Verify resolves a bearer token to an identity. ErrNotSignedIn means the
	// token is absent, expired or rejected; any other error is a provider failure.
	Verify(ctx context.Context, token string) (*Identity, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// IdentityClient verifies sessions against the hosted identity provider.
type IdentityClient struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     Logger
}

func NewIdentityProvider(conf *structures.Config, logger Logger) IdentityProviderInterface {
	if conf.Identity.Mode == "static" {
		logger.Warnf(TypeApp, "Identity provider in static mode, tokens are trusted verbatim")
		return &StaticIdentityProvider{}
	}
	if conf.Identity.ApiKey == "" {
		// A missing key is degraded, not fatal: every request resolves to
		// signed-out until the key is supplied.
		logger.Warnf(TypeApp, "Identity provider key missing, all requests resolve as signed out")
		return &unavailableIdentity{}
	}
	return &IdentityClient{
		baseURL:    strings.TrimSuffix(conf.Identity.BaseURL, "/"),
		apiKey:     conf.Identity.ApiKey,
		httpClient: &http.Client{Timeout: conf.Identity.Timeout},
		logger:     logger,
	}
}

func (c *IdentityClient) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrNotSignedIn
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/sessions/verify", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Session-Token", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusNotFound:
		return nil, ErrNotSignedIn
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("identity provider: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("identity provider: malformed response: %w", err)
	}
	if identity.ID == "" {
		return nil, ErrNotSignedIn
	}
	return &identity, nil
}

// StaticIdentityProvider accepts tokens of the form "user:<id>" without any
// remote call. Development and test use only.
type StaticIdentityProvider struct{}

func (s *StaticIdentityProvider) Verify(_ context.Context, token string) (*Identity, error) {
	id, ok := strings.CutPrefix(token, "user:")
	if !ok || id == "" {
		return nil, ErrNotSignedIn
	}
	return &Identity{ID: id}, nil
}

type unavailableIdentity struct{}

func (u *unavailableIdentity) Verify(_ context.Context, _ string) (*Identity, error) {
	return nil, ErrNotSignedIn
}

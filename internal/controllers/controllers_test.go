package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"batlog/internal/providers"
	"batlog/internal/services"
	"batlog/internal/structures"
	"batlog/internal/testutil"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testEnv stands up the full request path: static identity provider, auth
// middleware, controllers over in-memory repositories.
type testEnv struct {
	repo     *testutil.MockAtBatRepository
	profiles *testutil.MockProfileRepository
	cache    *testutil.MockCache
	logger   *testutil.MockLogger
	handler  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conf := &structures.Config{}
	conf.Undo.Window = 5 * time.Second

	env := &testEnv{
		repo:     &testutil.MockAtBatRepository{NextID: uuid.New},
		profiles: testutil.NewMockProfileRepository(),
		cache:    testutil.NewMockCache(),
		logger:   &testutil.MockLogger{},
	}

	metrics := providers.NewMetricsProvider(conf)
	atbats := services.NewAtBatService(env.repo, env.cache, env.logger, conf)
	profiles := services.NewProfileService(env.profiles, env.logger)
	sessions := services.NewSessionService(env.profiles, env.logger)

	atbatCtrl := NewAtBatController(env.logger, atbats, profiles, metrics, &testutil.MockCompressor{})
	dashCtrl := NewDashboardController(env.logger, atbats, profiles, env.cache)
	profileCtrl := NewProfileController(env.logger, profiles)
	sessionCtrl := NewSessionController(env.logger, sessions)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/at-bats", atbatCtrl.List)
	mux.HandleFunc("/api/at-bats/get", atbatCtrl.Get)
	mux.HandleFunc("/api/at-bats/create", atbatCtrl.Create)
	mux.HandleFunc("/api/at-bats/update", atbatCtrl.Update)
	mux.HandleFunc("/api/at-bats/delete", atbatCtrl.Delete)
	mux.HandleFunc("/api/at-bats/undo", atbatCtrl.Undo)
	mux.HandleFunc("/api/at-bats/export", atbatCtrl.Export)
	mux.HandleFunc("/api/dashboard/summary", dashCtrl.Summary)
	mux.HandleFunc("/api/profile", profileCtrl.Get)
	mux.HandleFunc("/api/profile/create", profileCtrl.Create)
	mux.HandleFunc("/api/profile/update", profileCtrl.Update)
	mux.HandleFunc("/api/session", sessionCtrl.State)

	env.handler = providers.AuthMiddleware(&providers.StaticIdentityProvider{}, env.logger, mux)
	return env
}

func (env *testEnv) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		gson, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(gson)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func atBatBody(overrides map[string]any) map[string]any {
	body := map[string]any{
		"date":        "2026-05-01",
		"pitchType":   "Fastball",
		"timing":      "On Time",
		"pitchZone":   5,
		"contact":     4,
		"hitType":     "Line Drive",
		"hitLocation": map[string]float64{"x": 0.4, "y": 0.6},
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

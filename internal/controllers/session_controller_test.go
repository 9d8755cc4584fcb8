package controllers

import (
	"net/http"
	"testing"

	"batlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionPayload struct {
	SignedIn bool `json:"signedIn"`
	Identity *struct {
		ID string `json:"id"`
	} `json:"identity"`
	Profile struct {
		HasProfile bool `json:"hasProfile"`
		Completed  bool `json:"completed"`
	} `json:"profile"`
	NextRoute string `json:"nextRoute"`
}

func TestSessionController_SignedOutIsStillOK(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/session?route=/dashboard", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload sessionPayload
	decodeResponse(t, rec, &payload)
	assert.False(t, payload.SignedIn)
	assert.Nil(t, payload.Identity)
	assert.Equal(t, "/sign-in", payload.NextRoute)
}

func TestSessionController_SignedOutOnPublicRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/session?route=/sign-in", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload sessionPayload
	decodeResponse(t, rec, &payload)
	assert.Equal(t, "", payload.NextRoute)
}

func TestSessionController_SignedInWithoutProfile(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/session?route=/dashboard", "user:u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload sessionPayload
	decodeResponse(t, rec, &payload)
	assert.True(t, payload.SignedIn)
	require.NotNil(t, payload.Identity)
	assert.Equal(t, "u1", payload.Identity.ID)
	assert.False(t, payload.Profile.HasProfile)
	assert.Equal(t, "/onboarding", payload.NextRoute)
}

func TestSessionController_OnboardedUserLeavesOnboarding(t *testing.T) {
	env := newTestEnv(t)
	env.profiles.Profiles["u1"] = &models.Profile{UserID: "u1", HasCompletedOnboarding: true}

	rec := env.do(t, http.MethodGet, "/api/session?route=/onboarding", "user:u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload sessionPayload
	decodeResponse(t, rec, &payload)
	assert.True(t, payload.Profile.HasProfile)
	assert.True(t, payload.Profile.Completed)
	assert.Equal(t, "/dashboard", payload.NextRoute)
}

func TestSessionController_DefaultsToHomeRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/session", "user:u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload sessionPayload
	decodeResponse(t, rec, &payload)
	// Home is public, so even a not-yet-onboarded user stays put.
	assert.Equal(t, "", payload.NextRoute)
}

package controllers

import (
	"net/http"
	"testing"

	"batlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileBody() map[string]any {
	return map[string]any{
		"firstName":   "Casey",
		"lastName":    "Jones",
		"birthday":    "2008-04-12",
		"hittingSide": "switch",
	}
}

func TestProfileController_GetWithoutProfile(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/profile", "user:u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileController_CreateThenGet(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/profile/create", "user:u1", profileBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/profile", "user:u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.Profile
	decodeResponse(t, rec, &profile)
	assert.Equal(t, "u1", profile.UserID)
	assert.Equal(t, models.HittingSideSwitch, profile.HittingSide)
	assert.True(t, profile.HasCompletedOnboarding)
}

func TestProfileController_SecondCreateIsConflict(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/profile/create", "user:u1", profileBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/profile/create", "user:u1", profileBody())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProfileController_CreateFieldErrors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/profile/create", "user:u1", map[string]any{"hittingSide": "both"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var payload struct {
		Errors map[string]string `json:"errors"`
	}
	decodeResponse(t, rec, &payload)
	assert.Contains(t, payload.Errors, "firstName")
	assert.Contains(t, payload.Errors, "hittingSide")
}

func TestProfileController_Update(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/profile/create", "user:u1", profileBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	body := profileBody()
	body["hittingSide"] = "left"
	rec = env.do(t, http.MethodPut, "/api/profile/update", "user:u1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.Profile
	decodeResponse(t, rec, &profile)
	assert.Equal(t, models.HittingSideLeft, profile.HittingSide)
}

func TestProfileController_UpdateWithoutProfile(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/api/profile/update", "user:u1", profileBody())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileController_RequiresIdentity(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package controllers

import (
	"batlog/internal/providers"
	"batlog/internal/repositories"
	"batlog/internal/services"
	"errors"
	"net/http"
)

type ProfileController struct {
	logger  providers.Logger
	service services.ProfileServiceInterface
}

func NewProfileController(logger providers.Logger, service services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{logger: logger, service: service}
}

func (pc *ProfileController) Get(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}

	profile, err := pc.service.Get(r.Context(), who.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no profile yet")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (pc *ProfileController) Create(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}

	var form services.ProfileForm
	if !decodeBody(w, r, &form) {
		return
	}

	profile, fieldErrs, err := pc.service.CompleteOnboarding(r.Context(), who, &form)
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	if errors.Is(err, services.ErrProfileExists) {
		writeError(w, http.StatusConflict, "profile already exists")
		return
	}
	if err != nil {
		pc.logger.Errorf(providers.TypePost, "onboarding failed: %s", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (pc *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}

	var form services.ProfileForm
	if !decodeBody(w, r, &form) {
		return
	}

	profile, fieldErrs, err := pc.service.Update(r.Context(), who.ID, &form)
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no profile yet")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

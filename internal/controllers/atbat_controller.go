package controllers

import (
	"batlog/internal/models"
	"batlog/internal/providers"
	"batlog/internal/repositories"
	"batlog/internal/services"
	"batlog/internal/stats"
	"errors"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

type AtBatController struct {
	logger     providers.Logger
	service    services.AtBatServiceInterface
	profiles   services.ProfileServiceInterface
	metrics    providers.MetricsProviderInterface
	compressor providers.CompressorInterface
}

func NewAtBatController(logger providers.Logger, service services.AtBatServiceInterface, profiles services.ProfileServiceInterface, metrics providers.MetricsProviderInterface, compressor providers.CompressorInterface) *AtBatController {
	return &AtBatController{
		logger:     logger,
		service:    service,
		profiles:   profiles,
		metrics:    metrics,
		compressor: compressor,
	}
}

// hittingSide loads the caller's declared hitting preference; the validator
// needs it to decide whether batting side is a required field.
func (ac *AtBatController) hittingSide(r *http.Request, userID string) string {
	profile, err := ac.profiles.Get(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			ac.logger.Errorf(providers.TypeDb, "profile lookup failed: %s", err)
		}
		return services.HittingSideOf(nil)
	}
	return services.HittingSideOf(profile)
}

func (ac *AtBatController) List(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}

	records, err := ac.service.List(r.Context(), who.ID, cast.ToInt(r.URL.Query().Get("limit")))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if pt := r.URL.Query().Get("pitchType"); pt != "" {
		records = stats.FilterPitchType(records, pt)
	}
	if dir := r.URL.Query().Get("direction"); dir != "" {
		records = stats.FilterDirection(records, dir)
	}
	writeJSON(w, http.StatusOK, records)
}

// Get serves one record for edit prefill. Unlike the list path, a corrupt
// stored hit location is an error here, not a silent nil.
func (ac *AtBatController) Get(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	record, err := ac.service.Get(r.Context(), who.ID, id)
	if err != nil {
		ac.writeLifecycleError(w, r, err)
		return
	}

	loc, err := record.EditLocation()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	record.Location = loc
	writeJSON(w, http.StatusOK, record)
}

func (ac *AtBatController) Create(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}

	var form services.AtBatForm
	if !decodeBody(w, r, &form) {
		return
	}

	record, fieldErrs, err := ac.service.Create(r.Context(), who.ID, &form, ac.hittingSide(r, who.ID))
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	if err != nil {
		ac.writeLifecycleError(w, r, err)
		return
	}

	ac.metrics.IncRecordsCreated()
	writeJSON(w, http.StatusCreated, record)
}

func (ac *AtBatController) Update(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	var form services.AtBatForm
	if !decodeBody(w, r, &form) {
		return
	}

	record, fieldErrs, err := ac.service.Update(r.Context(), who.ID, id, &form, ac.hittingSide(r, who.ID))
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	if err != nil {
		ac.writeLifecycleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (ac *AtBatController) Delete(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := ac.service.Delete(r.Context(), who.ID, id); err != nil {
		ac.writeLifecycleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AtBatController) Undo(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}

	record, err := ac.service.UndoDelete(r.Context(), who.ID)
	if errors.Is(err, services.ErrUndoExpired) {
		writeError(w, http.StatusGone, "nothing to undo")
		return
	}
	if err != nil {
		ac.writeLifecycleError(w, r, err)
		return
	}

	ac.metrics.IncUndoUsed()
	writeJSON(w, http.StatusCreated, record)
}

// Export streams the owner's full record set as zstd-compressed JSON.
func (ac *AtBatController) Export(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}

	records, err := ac.service.List(r.Context(), who.ID, 0)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	gson, err := json.Marshal(records)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	packed, err := ac.compressor.Compress(gson)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/zstd")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "at-bats.json.zst"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(packed)
}

func (ac *AtBatController) writeLifecycleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, models.ErrInvalidBattingSide),
		errors.Is(err, models.ErrInvalidDate):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		// Repository failures surface the underlying message; the client keeps
		// its form state and may resubmit. Nothing is retried here.
		ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "at-bat operation failed: %s", err)
		writeError(w, http.StatusBadGateway, err.Error())
	}
}

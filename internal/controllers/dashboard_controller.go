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

type DashboardController struct {
	logger   providers.Logger
	atbats   services.AtBatServiceInterface
	profiles services.ProfileServiceInterface
	cache    providers.CacheProviderInterface
}

func NewDashboardController(logger providers.Logger, atbats services.AtBatServiceInterface, profiles services.ProfileServiceInterface, cache providers.CacheProviderInterface) *DashboardController {
	return &DashboardController{
		logger:   logger,
		atbats:   atbats,
		profiles: profiles,
		cache:    cache,
	}
}

func (dc *DashboardController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := dc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		dc.logger.Errorf(providers.TypeGet, "dashboard compute failed: %s", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	dc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// Summary serves the aggregated dashboard for the signed-in owner. Responses
// are cached per owner, query and cache generation; every write bumps the
// generation, so a fresh read never sees pre-write data.
func (dc *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	who := requireIdentity(w, r)
	if who == nil {
		return
	}

	q := stats.Query{
		PitchType:   r.URL.Query().Get("pitchType"),
		BattingSide: r.URL.Query().Get("battingSide"),
		Last:        stats.NormalizeLast(cast.ToInt(r.URL.Query().Get("last"))),
	}
	if q.PitchType == "" {
		q.PitchType = stats.PitchTypeAll
	}

	hittingSide := models.HittingSideRight
	profile, err := dc.profiles.Get(r.Context(), who.ID)
	if err == nil {
		hittingSide = services.HittingSideOf(profile)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	q.SwitchHitter = hittingSide == models.HittingSideSwitch
	if q.SwitchHitter && q.BattingSide == "" {
		q.BattingSide = models.HittingSideLeft
	}

	cacheKey := fmt.Sprintf("dash:%s:%d:%s:%s:%d", who.ID, dc.cache.Generation(who.ID), q.PitchType, q.BattingSide, q.Last)
	dc.serveFromCacheOrCompute(w, cacheKey, func() (any, error) {
		records, err := dc.atbats.List(r.Context(), who.ID, 0)
		if err != nil {
			return nil, err
		}
		return stats.BuildSummary(records, q), nil
	})
}

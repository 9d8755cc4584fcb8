package services

import (
	"batlog/internal/models"
	"batlog/internal/providers"
	"batlog/internal/repositories"
	"batlog/internal/structures"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrUndoExpired = errors.New("nothing to undo")
)

// AtBatServiceInterface owns the record lifecycle: validate, normalize,
// write, and the time-boxed delete undo.
type AtBatServiceInterface interface {
	List(ctx context.Context, userID string, limit int) ([]models.AtBat, error)
	Get(ctx context.Context, userID string, id string) (*models.AtBat, error)
	Create(ctx context.Context, userID string, form *AtBatForm, hittingSide string) (*models.AtBat, map[string]string, error)
	Update(ctx context.Context, userID string, id string, form *AtBatForm, hittingSide string) (*models.AtBat, map[string]string, error)
	Delete(ctx context.Context, userID string, id string) error
	UndoDelete(ctx context.Context, userID string) (*models.AtBat, error)
}

type undoSlot struct {
	record     *models.AtBat
	capturedAt time.Time
}

type AtBatService struct {
	repo   repositories.AtBatRepositoryInterface
	cache  providers.CacheProviderInterface
	logger providers.Logger
	window time.Duration

	mu    sync.Mutex
	slots map[string]undoSlot
	now   func() time.Time
}

func NewAtBatService(repo repositories.AtBatRepositoryInterface, cache providers.CacheProviderInterface, logger providers.Logger, conf *structures.Config) AtBatServiceInterface {
	return &AtBatService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		window: conf.Undo.Window,
		slots:  make(map[string]undoSlot),
		now:    time.Now,
	}
}

func (s *AtBatService) List(ctx context.Context, userID string, limit int) ([]models.AtBat, error) {
	return s.repo.ListByOwner(ctx, userID, limit)
}

func (s *AtBatService) Get(ctx context.Context, userID string, id string) (*models.AtBat, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// buildRecord turns a validated form into a persistable row. The batting side
// is taken from the form for switch hitters and defaulted from the profile's
// hitting preference otherwise, then normalized; an invalid side aborts the
// whole submission, no partial write.
func (s *AtBatService) buildRecord(userID string, form *AtBatForm, hittingSide string) (*models.AtBat, error) {
	side := form.BattingSide
	if hittingSide != models.HittingSideSwitch && side == "" {
		side = hittingSide
	}
	normalized, err := models.NormalizeBattingSide(side)
	if err != nil {
		return nil, err
	}

	date, err := models.ParseDate(form.Date)
	if err != nil {
		return nil, err
	}

	record := &models.AtBat{
		UserID:      userID,
		Date:        date,
		PitchType:   form.PitchType,
		Timing:      form.Timing,
		PitchZone:   form.PitchZone,
		Contact:     form.Contact,
		HitType:     form.HitType,
		BattingSide: normalized,
	}
	if err := record.SetLocation(form.HitLocation); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *AtBatService) Create(ctx context.Context, userID string, form *AtBatForm, hittingSide string) (*models.AtBat, map[string]string, error) {
	if errs := ValidateAtBatForm(form, hittingSide); len(errs) > 0 {
		return nil, errs, ErrValidation
	}

	record, err := s.buildRecord(userID, form, hittingSide)
	if err != nil {
		return nil, nil, err
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, nil, err
	}

	s.cache.Invalidate(userID)
	s.logger.Infof(providers.TypeApp, "at-bat created for user %s", userID)
	return record, nil, nil
}

func (s *AtBatService) Update(ctx context.Context, userID string, id string, form *AtBatForm, hittingSide string) (*models.AtBat, map[string]string, error) {
	if errs := ValidateAtBatForm(form, hittingSide); len(errs) > 0 {
		return nil, errs, ErrValidation
	}

	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}

	record, err := s.buildRecord(userID, form, hittingSide)
	if err != nil {
		return nil, nil, err
	}
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, nil, err
	}

	s.cache.Invalidate(userID)
	return record, nil, nil
}

// Delete captures the full prior row, then removes it remotely. The capture
// is armed for the undo window only after the remote delete succeeds; a
// failed delete leaves no undo state behind.
func (s *AtBatService) Delete(ctx context.Context, userID string, id string) error {
	prior, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.slots[userID] = undoSlot{record: prior.Clone(), capturedAt: s.now()}
	s.mu.Unlock()

	s.cache.Invalidate(userID)
	s.logger.Infof(providers.TypeApp, "at-bat %s deleted for user %s, undo armed for %s", id, userID, s.window)
	return nil
}

// UndoDelete re-inserts the captured record's field set under a fresh id.
// After the window elapses, or when a newer delete has replaced the capture,
// the original slot is gone and ErrUndoExpired is returned.
func (s *AtBatService) UndoDelete(ctx context.Context, userID string) (*models.AtBat, error) {
	s.mu.Lock()
	slot, ok := s.slots[userID]
	if ok {
		delete(s.slots, userID)
	}
	s.mu.Unlock()

	if !ok || s.now().Sub(slot.capturedAt) > s.window {
		return nil, ErrUndoExpired
	}

	record := slot.record.Clone()
	record.ID = uuid.Nil
	record.CreatedAt = time.Time{}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("undo re-insert: %w", err)
	}

	s.cache.Invalidate(userID)
	return record, nil
}

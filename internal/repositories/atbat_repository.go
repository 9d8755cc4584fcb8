package repositories

import (
	"batlog/internal/models"
	"batlog/internal/providers"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// AtBatRepositoryInterface is the datastore boundary for at-bat rows. Every
// operation is scoped to the owning user; there is no cross-user access path.
// Concurrent writes to the same row are last-write-wins: each update is a
// full-row write, and an update racing a delete either lands first or matches
// zero rows and reports ErrNotFound.
type AtBatRepositoryInterface interface {
	Create(ctx context.Context, record *models.AtBat) error
	ListByOwner(ctx context.Context, userID string, limit int) ([]models.AtBat, error)
	GetByID(ctx context.Context, userID string, id string) (*models.AtBat, error)
	Update(ctx context.Context, record *models.AtBat) error
	Delete(ctx context.Context, userID string, id string) error
}

type AtBatRepository struct {
	db      *gorm.DB
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewAtBatRepository(db *gorm.DB, logger providers.Logger, metrics providers.MetricsProviderInterface) AtBatRepositoryInterface {
	return &AtBatRepository{db: db, logger: logger, metrics: metrics}
}

func (r *AtBatRepository) observe(op string, start time.Time) {
	r.metrics.ObserveDbDuration(op, time.Since(start))
}

func (r *AtBatRepository) Create(ctx context.Context, record *models.AtBat) error {
	defer r.observe("atbat_create", time.Now())
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		r.logger.Errorf(providers.TypeDb, "at-bat insert failed: %s", err)
		return fmt.Errorf("insert at-bat: %w", err)
	}
	return nil
}

func (r *AtBatRepository) ListByOwner(ctx context.Context, userID string, limit int) ([]models.AtBat, error) {
	defer r.observe("atbat_list", time.Now())
	records := make([]models.AtBat, 0)
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		r.logger.Errorf(providers.TypeDb, "at-bat list failed: %s", err)
		return nil, fmt.Errorf("list at-bats: %w", err)
	}
	return records, nil
}

func (r *AtBatRepository) GetByID(ctx context.Context, userID string, id string) (*models.AtBat, error) {
	defer r.observe("atbat_get", time.Now())
	var record models.AtBat
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Errorf(providers.TypeDb, "at-bat get failed: %s", err)
		return nil, fmt.Errorf("get at-bat: %w", err)
	}
	return &record, nil
}

func (r *AtBatRepository) Update(ctx context.Context, record *models.AtBat) error {
	defer r.observe("atbat_update", time.Now())
	res := r.db.WithContext(ctx).
		Model(&models.AtBat{}).
		Where("user_id = ? AND id = ?", record.UserID, record.ID).
		Updates(map[string]interface{}{
			"date":           record.Date,
			"pitch_type":     record.PitchType,
			"timing":         record.Timing,
			"pitch_location": record.PitchZone,
			"contact":        record.Contact,
			"hit_type":       record.HitType,
			"hit_location":   record.RawLocation,
			"batting_side":   record.BattingSide,
		})
	if res.Error != nil {
		r.logger.Errorf(providers.TypeDb, "at-bat update failed: %s", res.Error)
		return fmt.Errorf("update at-bat: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AtBatRepository) Delete(ctx context.Context, userID string, id string) error {
	defer r.observe("atbat_delete", time.Now())
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.AtBat{})
	if res.Error != nil {
		r.logger.Errorf(providers.TypeDb, "at-bat delete failed: %s", res.Error)
		return fmt.Errorf("delete at-bat: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

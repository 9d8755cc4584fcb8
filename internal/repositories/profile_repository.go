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

type ProfileRepositoryInterface interface {
	GetByUser(ctx context.Context, userID string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
}

type ProfileRepository struct {
	db      *gorm.DB
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewProfileRepository(db *gorm.DB, logger providers.Logger, metrics providers.MetricsProviderInterface) ProfileRepositoryInterface {
	return &ProfileRepository{db: db, logger: logger, metrics: metrics}
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID string) (*models.Profile, error) {
	defer func(start time.Time) { r.metrics.ObserveDbDuration("profile_get", time.Since(start)) }(time.Now())
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Errorf(providers.TypeDb, "profile get failed: %s", err)
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	defer func(start time.Time) { r.metrics.ObserveDbDuration("profile_create", time.Since(start)) }(time.Now())
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		r.logger.Errorf(providers.TypeDb, "profile insert failed: %s", err)
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	defer func(start time.Time) { r.metrics.ObserveDbDuration("profile_update", time.Since(start)) }(time.Now())
	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"first_name":               profile.FirstName,
			"last_name":                profile.LastName,
			"birthday":                 profile.Birthday,
			"hitting_side":             profile.HittingSide,
			"has_completed_onboarding": profile.HasCompletedOnboarding,
		})
	if res.Error != nil {
		r.logger.Errorf(providers.TypeDb, "profile update failed: %s", res.Error)
		return fmt.Errorf("update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package services

import (
	"batlog/internal/models"
	"batlog/internal/providers"
	"batlog/internal/repositories"
	"context"
	"errors"
)

var ErrProfileExists = errors.New("profile already exists")

// ProfileForm is the onboarding submission.
type ProfileForm struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Birthday    string `json:"birthday" validate:"required"`
	HittingSide string `json:"hittingSide" validate:"required"`
}

type ProfileServiceInterface interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// CompleteOnboarding creates the one-per-user profile. A second create for
	// the same user is ErrProfileExists, never a silent overwrite.
	CompleteOnboarding(ctx context.Context, identity *providers.Identity, form *ProfileForm) (*models.Profile, map[string]string, error)
	Update(ctx context.Context, userID string, form *ProfileForm) (*models.Profile, map[string]string, error)
}

type ProfileService struct {
	repo   repositories.ProfileRepositoryInterface
	logger providers.Logger
}

func NewProfileService(repo repositories.ProfileRepositoryInterface, logger providers.Logger) ProfileServiceInterface {
	return &ProfileService{repo: repo, logger: logger}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return s.repo.GetByUser(ctx, userID)
}

func validateProfileForm(form *ProfileForm) map[string]string {
	errs := make(map[string]string)
	if form.FirstName == "" {
		errs["firstName"] = "First name is required"
	}
	if form.LastName == "" {
		errs["lastName"] = "Last name is required"
	}
	if form.Birthday == "" {
		errs["birthday"] = "Birthday is required"
	} else if _, err := models.ParseDate(form.Birthday); err != nil {
		errs["birthday"] = "Birthday must be a valid date"
	}
	if !models.IsValidHittingSide(form.HittingSide) {
		errs["hittingSide"] = "Hitting side must be left, right or switch"
	}
	return errs
}

func (s *ProfileService) CompleteOnboarding(ctx context.Context, identity *providers.Identity, form *ProfileForm) (*models.Profile, map[string]string, error) {
	if errs := validateProfileForm(form); len(errs) > 0 {
		return nil, errs, ErrValidation
	}

	if _, err := s.repo.GetByUser(ctx, identity.ID); err == nil {
		return nil, nil, ErrProfileExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, err
	}

	birthday, _ := models.ParseDate(form.Birthday)
	profile := &models.Profile{
		UserID:                 identity.ID,
		FirstName:              form.FirstName,
		LastName:               form.LastName,
		Birthday:               birthday,
		HittingSide:            form.HittingSide,
		HasCompletedOnboarding: true,
	}
	if identity.Email != "" {
		email := identity.Email
		profile.Email = &email
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, nil, err
	}

	s.logger.Infof(providers.TypeApp, "onboarding completed for user %s", identity.ID)
	return profile, nil, nil
}

func (s *ProfileService) Update(ctx context.Context, userID string, form *ProfileForm) (*models.Profile, map[string]string, error) {
	if errs := validateProfileForm(form); len(errs) > 0 {
		return nil, errs, ErrValidation
	}

	profile, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	birthday, _ := models.ParseDate(form.Birthday)
	profile.FirstName = form.FirstName
	profile.LastName = form.LastName
	profile.Birthday = birthday
	profile.HittingSide = form.HittingSide
	profile.HasCompletedOnboarding = true

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, nil, err
	}
	return profile, nil, nil
}

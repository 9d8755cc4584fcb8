package services

import (
	"batlog/internal/models"
	"batlog/internal/providers"
	"batlog/internal/repositories"
	"context"
	"errors"
)

// SessionPhase is the identity resolution lifecycle:
// uninitialized -> loading -> resolved(user|none).
type SessionPhase int

const (
	PhaseUninitialized SessionPhase = iota
	PhaseLoading
	PhaseResolved
)

// Session is the explicit session object handed to whatever needs auth state;
// there is exactly one source of truth for redirect decisions.
type Session struct {
	Phase    SessionPhase
	Identity *providers.Identity
}

func (s Session) SignedIn() bool {
	return s.Phase == PhaseResolved && s.Identity != nil
}

// ProfileState is the onboarding progress as seen by the routing decision.
type ProfileState struct {
	HasProfile bool
	Completed  bool
}

const (
	RouteSignIn     = "/sign-in"
	RouteSignUp     = "/sign-up"
	RouteOnboarding = "/onboarding"
	RouteDashboard  = "/dashboard"
	RouteHome       = "/"
)

func isProtectedRoute(route string) bool {
	switch route {
	case RouteSignIn, RouteSignUp, RouteHome:
		return false
	default:
		return true
	}
}

// NextRoute is the redirect decision as a pure function of session, current
// route and profile state. It returns the route to move to, or "" to stay.
// An unresolved session never redirects: ambiguous auth state blocks on a
// loading indicator until the provider settles.
func NextRoute(session Session, currentRoute string, profile ProfileState) string {
	if session.Phase != PhaseResolved {
		return ""
	}

	if !session.SignedIn() {
		if isProtectedRoute(currentRoute) {
			return RouteSignIn
		}
		return ""
	}

	if !profile.Completed {
		if currentRoute != RouteOnboarding && isProtectedRoute(currentRoute) {
			return RouteOnboarding
		}
		return ""
	}

	// Onboarded users have no business on the onboarding or sign-in screens.
	if currentRoute == RouteOnboarding || currentRoute == RouteSignIn || currentRoute == RouteSignUp {
		return RouteDashboard
	}
	return ""
}

// SessionServiceInterface resolves the caller's session and profile state in
// one place, so the aggregation and lifecycle paths share a single contract.
type SessionServiceInterface interface {
	Resolve(ctx context.Context, identity *providers.Identity) (Session, ProfileState, error)
}

type SessionService struct {
	profiles repositories.ProfileRepositoryInterface
	logger   providers.Logger
}

func NewSessionService(profiles repositories.ProfileRepositoryInterface, logger providers.Logger) SessionServiceInterface {
	return &SessionService{profiles: profiles, logger: logger}
}

func (s *SessionService) Resolve(ctx context.Context, identity *providers.Identity) (Session, ProfileState, error) {
	session := Session{Phase: PhaseResolved, Identity: identity}
	if identity == nil {
		return session, ProfileState{}, nil
	}

	profile, err := s.profiles.GetByUser(ctx, identity.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		return session, ProfileState{}, nil
	}
	if err != nil {
		return session, ProfileState{}, err
	}
	return session, ProfileState{
		HasProfile: true,
		Completed:  profile.HasCompletedOnboarding,
	}, nil
}

// HittingSideOf is the profile hitting preference used by form validation
// and dashboard filtering; a missing profile defaults to right.
func HittingSideOf(profile *models.Profile) string {
	if profile == nil || !models.IsValidHittingSide(profile.HittingSide) {
		return models.HittingSideRight
	}
	return profile.HittingSide
}

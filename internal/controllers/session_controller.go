package controllers

import (
	"batlog/internal/providers"
	"batlog/internal/services"
	"net/http"
)

type SessionController struct {
	logger   providers.Logger
	sessions services.SessionServiceInterface
}

func NewSessionController(logger providers.Logger, sessions services.SessionServiceInterface) *SessionController {
	return &SessionController{logger: logger, sessions: sessions}
}

type sessionResponse struct {
	SignedIn  bool                `json:"signedIn"`
	Identity  *providers.Identity `json:"identity,omitempty"`
	Profile   sessionProfile      `json:"profile"`
	NextRoute string              `json:"nextRoute"`
}

type sessionProfile struct {
	HasProfile bool `json:"hasProfile"`
	Completed  bool `json:"completed"`
}

// State reports the caller's resolved session plus the redirect decision for
// the route it says it is on. Signed-out callers get a 200 here, not a 401:
// "who am I" must be answerable before sign-in.
func (sc *SessionController) State(w http.ResponseWriter, r *http.Request) {
	who := providers.IdentityFromContext(r.Context())

	session, profileState, err := sc.sessions.Resolve(r.Context(), who)
	if err != nil {
		sc.logger.Errorf(providers.TypeGet, "session resolve failed: %s", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	currentRoute := r.URL.Query().Get("route")
	if currentRoute == "" {
		currentRoute = services.RouteHome
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		SignedIn: session.SignedIn(),
		Identity: session.Identity,
		Profile: sessionProfile{
			HasProfile: profileState.HasProfile,
			Completed:  profileState.Completed,
		},
		NextRoute: services.NextRoute(session, currentRoute, profileState),
	})
}

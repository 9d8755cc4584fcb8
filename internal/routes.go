package internal

import (
	"batlog/internal/controllers"
	"batlog/internal/providers"
	"net/http"
)

func InitRoutes(atBats *controllers.AtBatController, dashboard *controllers.DashboardController, profile *controllers.ProfileController, session *controllers.SessionController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/atbats/list", http.HandlerFunc(atBats.List))
	routers.Get("/api/atbats/get", http.HandlerFunc(atBats.Get))
	routers.Post("/api/atbats", http.HandlerFunc(atBats.Create))
	routers.Put("/api/atbats/update", http.HandlerFunc(atBats.Update))
	routers.Delete("/api/atbats/delete", http.HandlerFunc(atBats.Delete))
	routers.Post("/api/atbats/undo", http.HandlerFunc(atBats.Undo))
	routers.Get("/api/atbats/export", http.HandlerFunc(atBats.Export))
	routers.Get("/api/dashboard", http.HandlerFunc(dashboard.Summary))
	routers.Get("/api/profile", http.HandlerFunc(profile.Get))
	routers.Post("/api/profile", http.HandlerFunc(profile.Create))
	routers.Put("/api/profile/update", http.HandlerFunc(profile.Update))
	routers.Get("/api/session", http.HandlerFunc(session.State))
	return routers
}

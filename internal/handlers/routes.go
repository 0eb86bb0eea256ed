package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/park-planner-api/internal/config"
	"github.com/gdg-garage/park-planner-api/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, sessions *session.Manager, plannerHandler *PlannerHandler, planHandler *PlanHandler) huma.API {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", session.HeaderName},
			AllowCredentials: true,
		}).Handler)
	}
	r.Use(sessions.Middleware)

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Park Planner API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"sessionCookie": {
			Type: "apiKey",
			In:   "cookie",
			Name: session.CookieName,
		},
		"sessionHeader": {
			Type: "apiKey",
			In:   "header",
			Name: session.HeaderName,
		},
	}
	api := humachi.New(r, humaConfig)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	huma.Get(api, "/catalog", planHandler.HandleCatalog)
	huma.Post(api, "/plans", planHandler.HandleGeneratePlan)
	huma.Post(api, "/sessions", plannerHandler.HandleCreateSession, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	})

	// Session routes
	withSession := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"sessionCookie": {}}, {"sessionHeader": {}}}
	}
	huma.Get(api, "/session", plannerHandler.HandleGetSession, withSession)
	huma.Put(api, "/session/park", plannerHandler.HandleSetPark, withSession)
	huma.Put(api, "/session/duration", plannerHandler.HandleSetDuration, withSession)
	huma.Post(api, "/session/toggle", plannerHandler.HandleToggle, withSession)
	huma.Post(api, "/session/generate", plannerHandler.HandleGenerate, withSession, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusAccepted
	})
	huma.Delete(api, "/session/generate", plannerHandler.HandleCancelGenerate, withSession)
	huma.Get(api, "/session/history", plannerHandler.HandleHistory, withSession)

	return api
}

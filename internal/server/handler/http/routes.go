package http

import (
	"net/http"

	"github.com/foodfairhq/fairtrack/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig carries the routing options that come from configuration.
type RouterConfig struct {
	// CORSOrigin is the single origin allowed credentialed access.
	CORSOrigin string
	// RequireAuth attaches the session-token verifier to the data routes.
	RequireAuth bool
	// Verifier validates session tokens when RequireAuth is set.
	Verifier middleware.TokenVerifier
}

// NewRouter constructs and returns an HTTP handler that serves the
// food-fair tracking API. It applies CORS for the configured origin,
// JSON content-type enforcement, and request logging, and mounts all
// endpoints under /api.
//
// Routes:
//
//	POST /api/jwt     → tokenHandler.Issue
//	POST /api/items   → itemHandler.Create
//	GET  /api/items   → itemHandler.List
//	POST /api/sales   → saleHandler.Create
//	GET  /api/sales   → saleHandler.List
//	POST /api/costs   → costHandler.Create
//	GET  /api/costs   → costHandler.List
//	GET  /api/report  → reportHandler.Get
//	POST /api/places  → placeHandler.Create
//	GET  /api/places  → placeHandler.List
//
// The token verifier guards the data routes only when cfg.RequireAuth
// is set; /api/jwt is always public so a session can be obtained.
func NewRouter(
	tokenHandler *TokenHandler,
	itemHandler *ItemHandler,
	saleHandler *SaleHandler,
	costHandler *CostHandler,
	placeHandler *PlaceHandler,
	reportHandler *ReportHandler,
	logger *zap.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	// Credentialed cross-origin access for the single configured caller
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Welcome to the FairTrack System"))
	})

	r.Route("/api", func(r chi.Router) {
		// Public endpoint: session issuance
		r.Post("/jwt", tokenHandler.Issue)

		// Data routes: guarded only when auth is required by config
		r.Group(func(r chi.Router) {
			if cfg.RequireAuth {
				r.Use(middleware.CookieAuth(cfg.Verifier))
			}

			r.Post("/items", itemHandler.Create)
			r.Get("/items", itemHandler.List)

			r.Post("/sales", saleHandler.Create)
			r.Get("/sales", saleHandler.List)

			r.Post("/costs", costHandler.Create)
			r.Get("/costs", costHandler.List)

			r.Get("/report", reportHandler.Get)

			r.Post("/places", placeHandler.Create)
			r.Get("/places", placeHandler.List)
		})
	})

	return r
}

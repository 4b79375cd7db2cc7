// Package router assembles the HTTP routes of the API server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/menuorder/backend/internal/image"
	"github.com/menuorder/backend/internal/menu"
	appMiddleware "github.com/menuorder/backend/internal/middleware"
	"github.com/menuorder/backend/internal/response"

	_ "github.com/menuorder/backend/docs/swagger"
)

// Handlers bundles the endpoint handlers the router dispatches to.
type Handlers struct {
	Menu  *menu.Handler
	Image *image.Handler
}

// Options toggles optional routes.
type Options struct {
	// Swagger mounts the Swagger UI under /swagger/.
	Swagger bool
}

// New returns the root handler with middleware and all routes mounted.
func New(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Get("/combine-info/{id}", h.Menu.GetCombineInfo)

	r.Route("/images", func(r chi.Router) {
		r.Post("/", h.Image.Upload)
		r.Get("/url", h.Image.DownloadURL)
	})

	return r
}

package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/employee"
	"github.com/frahmantamala/employee-management/internal/transport/middleware"
	"github.com/frahmantamala/employee-management/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes mounts the API surface: open auth routes, protected
// employee routes, health, uploaded images, and the swagger UI.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, employeeHandler *employee.Handler, uploadDir, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Uploaded profile pictures are public by path once stored
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/health/ready", healthHandler.readinessHandler)

		// Auth routes are the entry point to obtain a token, so they
		// stay unprotected
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/signup", authHandler.Signup)
			sr.Post("/login", authHandler.Login)
		})

		// Everything under /employees requires a valid bearer token
		r.Route("/employees", func(er chi.Router) {
			er.Use(authHandler.AuthMiddleware)

			er.Post("/", employeeHandler.Create)
			er.Get("/", employeeHandler.List)
			er.Get("/search", employeeHandler.Search)
			er.Get("/{id}", employeeHandler.Get)
			er.Put("/{id}", employeeHandler.Update)
			er.Delete("/{id}", employeeHandler.Delete)
		})
	})
}

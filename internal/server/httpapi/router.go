package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// spanOperation names the server span of every request.
const spanOperation = "tuchka.http"

// Handler builds the router with all routes and middleware, wrapped in a
// server span per request.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)

	r.Route("/api/authenticate", func(r chi.Router) {
		r.Use(s.bodySizeLimit(s.maxBodyBytes))

		r.Post("/register", s.handleRegister)
		r.Post("/register-admin", s.handleRegisterAdmin)
		r.Post("/login", s.handleLogin)
		r.Post("/change-password", s.handleChangePassword)
		r.Post("/reset-password-token", s.handleResetPasswordToken)
		r.Post("/reset-password", s.handleResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Use(s.requireRole(common.RoleAdmin))
			r.Post("/reset-password-admin", s.handleResetPasswordAdmin)
		})
	})

	if s.documents != nil {
		r.Route("/api/documents", func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.With(s.bodySizeLimit(s.maxUploadBytes)).Post("/", s.handleUploadDocuments)
			r.Get("/list", s.handleListDocuments)

			r.Group(func(r chi.Router) {
				r.Use(s.requireRole(common.RoleAdmin))
				r.Get("/", s.handleListAllDocuments)
				r.Delete("/admin/{id}", s.handleAdminDeleteDocument)
			})

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetDocument)
				r.Get("/download", s.handleDownloadDocument)
				r.With(s.bodySizeLimit(s.maxBodyBytes)).Put("/", s.handleRenameDocument)
				r.Delete("/", s.handleDeleteDocument)
			})
		})
	}

	opts := []otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	}
	if s.tracerProvider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(s.tracerProvider))
	}
	return otelhttp.NewHandler(r, spanOperation, opts...)
}

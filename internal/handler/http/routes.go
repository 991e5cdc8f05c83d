package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/owner-setup", h.ownerSetupForm)
		r.Post("/owner-setup", h.ownerSetup)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Get("/view/{token}", h.publicView)
		r.Get("/view/{token}/pdf", h.publicPDF)
		r.Get("/health", h.health)
	})

	// staff routes behind the session middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/dashboard", h.dashboard)
		r.Get("/new", h.newInvoiceForm)
		r.Post("/new", h.newInvoice)
		r.Get("/created/{id}", h.created)
		r.Get("/invoice/{id}/pdf", h.invoicePDF)
	})

	return router
}

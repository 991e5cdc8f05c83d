// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and the HTML templates for the
// staff and public pages. Authentication, logging, and tracing concerns are
// all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/internal/utils"
)

// sessionCookieName is the name of the signed staff session cookie.
const sessionCookieName = "session"

// auth is an HTTP middleware that enforces session-based staff
// authentication.
//
// It reads the session cookie, validates it via
// [service.AuthService.ParseSession] and on success stores the restored
// [models.Identity] in the request context under [utils.IdentityCtxKey]
// before delegating to the next handler. Handlers receive the identity
// explicitly from the context instead of reading ambient session state.
//
// Unauthenticated requests (no cookie, expired or forged token) are
// redirected to the login page. Authenticated requests whose role is outside
// the staff set are rejected with 403.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseSession(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Msg("session cookie rejected")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		if !identity.IsStaff() {
			log.Error().Str("role", identity.Role).Msg("role is not permitted")
			http.Error(w, "No access", http.StatusForbidden)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/internal/service"
)

// home routes the visitor to the right entry point: dashboard for a live
// session, owner setup while no owner account exists, login otherwise.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if identity, err := h.services.AuthService.ParseSession(ctx, cookie.Value); err == nil && identity.IsStaff() {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
	}

	exists, err := h.services.AuthService.OwnerExists(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !exists {
		http.Redirect(w, r, "/owner-setup", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) ownerSetupForm(w http.ResponseWriter, r *http.Request) {
	exists, err := h.services.AuthService.OwnerExists(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if exists {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.renderPage(w, r, http.StatusOK, "owner_setup.html", ownerSetupView{})
}

func (h *Handler) ownerSetup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	in := service.OwnerSetupInput{
		SetupKey:        r.PostFormValue("setup_key"),
		Username:        r.PostFormValue("username"),
		Password:        r.PostFormValue("password"),
		PasswordConfirm: r.PostFormValue("password_confirm"),
	}

	owner, err := h.services.AuthService.SetupOwner(ctx, in)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrOwnerAlreadyExists):
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	case errors.Is(err, service.ErrWrongSetupKey), errors.Is(err, service.ErrInvalidOwnerInput):
		h.renderPage(w, r, http.StatusBadRequest, "owner_setup.html", ownerSetupView{
			Error: err.Error(),
			Form:  credentialsForm{Username: in.Username},
		})
		return
	default:
		h.serverError(w, r, err)
		return
	}

	log.Info().Str("username", owner.Username).Msg("owner account created")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, "login.html", loginView{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) {
			h.renderPage(w, r, http.StatusBadRequest, "login.html", loginView{
				Error: err.Error(),
				Form:  credentialsForm{Username: username},
			})
			return
		}
		h.serverError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateSession(ctx, user)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info().Str("username", user.Username).Msg("user logged in")
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/login", http.StatusFound)
}

// renderPage executes a page template and reports render failures as 500s.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := h.templates.render(w, status, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("template render failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("request failed")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

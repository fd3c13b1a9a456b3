package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/utils"
)

const stateCookieName = "oauth_state"

func (h *Handler) googleDisabled(w http.ResponseWriter) bool {
	if h.google != nil {
		return false
	}
	utils.JSONResponse(w, http.StatusServiceUnavailable, utils.Payload{
		Success: false,
		Message: "Google sign-in is not configured",
	})
	return true
}

// HandleGoogleLogin godoc
// @Summary Start Google sign-in
// @Tags Auth
// @Param redirect query string false "login or register"
// @Success 307 "Redirect to Google"
// @Failure 503 {object} utils.Payload "Google sign-in disabled"
// @Router /auth/google/login [get]
func (h *Handler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.googleDisabled(w) {
		return
	}

	state, nonce, err := GenerateState(r.URL.Query().Get("redirect"))
	if err != nil {
		h.log.Error(r.Context(), "failed to generate oauth state", "error", err)
		internalError(w, "Failed to generate OAuth state")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    nonce,
		Path:     "/auth/google",
		MaxAge:   600,
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.google.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// HandleGoogleCallback godoc
// @Summary Finish Google sign-in
// @Tags Auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 303 "Redirect to /members-area"
// @Failure 400 {object} utils.Payload "Invalid OAuth state"
// @Router /auth/google/callback [get]
func (h *Handler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.googleDisabled(w) {
		return
	}

	flow, nonce, err := DecodeState(r.FormValue("state"))
	cookie, cookieErr := r.Cookie(stateCookieName)
	if err != nil || cookieErr != nil || subtle.ConstantTimeCompare([]byte(nonce), []byte(cookie.Value)) != 1 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid OAuth state",
		})
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, Path: "/auth/google", MaxAge: -1})

	profile, err := h.google.Profile(r.Context(), r.FormValue("code"))
	if err != nil {
		h.log.Error(r.Context(), "google profile lookup failed", "error", err)
		internalError(w, "Failed to get user info")
		return
	}

	ticket, err := h.auth.LoginWithGoogle(r.Context(), profile, flow == flowRegister)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrNotFound):
		redirect(w, r, "/signup?error=user_not_found")
		return
	case errors.Is(err, common.ErrDuplicateUsername):
		redirect(w, r, "/login?error=user_already_exists")
		return
	default:
		h.log.Error(r.Context(), "google login failed", "error", err)
		internalError(w, "Failed to log in")
		return
	}

	h.setSessionCookie(w, ticket)
	http.Redirect(w, r, "/members-area", http.StatusSeeOther)
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/rohits-web03/clubhouse/internal/api/middleware"
	"github.com/rohits-web03/clubhouse/internal/logging"
	"github.com/rohits-web03/clubhouse/internal/services"
	"github.com/rohits-web03/clubhouse/internal/utils"
)

const flashSessionName = "flash"

// GoogleAuthenticator is the part of the Google OAuth client the handlers
// use. A nil value disables the Google routes.
type GoogleAuthenticator interface {
	AuthCodeURL(state string) string
	Profile(ctx context.Context, code string) (services.GoogleProfile, error)
}

type Deps struct {
	Auth     *services.AuthService
	Gate     *services.MembershipGate
	Board    *services.Board
	Archiver *services.Archiver
	Google   GoogleAuthenticator
	// FlashKey authenticates the flash cookie.
	FlashKey      []byte
	SecureCookies bool
	Log           logging.Logger
}

type Handler struct {
	auth          *services.AuthService
	gate          *services.MembershipGate
	board         *services.Board
	archiver      *services.Archiver
	google        GoogleAuthenticator
	flashes       *sessions.CookieStore
	secureCookies bool
	log           logging.Logger
}

func New(d Deps) *Handler {
	store := sessions.NewCookieStore(d.FlashKey)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   d.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}

	return &Handler{
		auth:          d.Auth,
		gate:          d.Gate,
		board:         d.Board,
		archiver:      d.Archiver,
		google:        d.Google,
		flashes:       store,
		secureCookies: d.SecureCookies,
		log:           d.Log,
	}
}

func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := h.flashes.Get(r, flashSessionName)
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		h.log.Warn(r.Context(), "failed to save flash", "error", err)
	}
}

// popFlashes returns and clears pending flash messages. It must run before
// the response header is written.
func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := h.flashes.Get(r, flashSessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return []string{}
	}
	if err := session.Save(r, w); err != nil {
		h.log.Warn(r.Context(), "failed to clear flashes", "error", err)
	}

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, ticket *services.Ticket) {
	maxAge := int(time.Until(ticket.Session.ExpiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    ticket.Token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(middleware.SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// redirect answers a POST with 303 so the client follows up with a GET.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	status := http.StatusFound
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		status = http.StatusSeeOther
	}
	http.Redirect(w, r, path, status)
}

func invalidInput(w http.ResponseWriter) {
	utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
		Success: false,
		Message: "Invalid input",
	})
}

func internalError(w http.ResponseWriter, message string) {
	utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
		Success: false,
		Message: message,
	})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/rohits-web03/clubhouse/internal/api/middleware"
	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/services"
	"github.com/rohits-web03/clubhouse/internal/utils"
)

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

// ShowLogin godoc
// @Summary Login prompt
// @Description Returns pending flash messages. Authenticated callers are sent to the members area.
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Success 302 "Already logged in"
// @Router /login [get]
func (h *Handler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if !middleware.IdentityFrom(r.Context()).IsAnonymous() {
		redirect(w, r, "/members-area")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Please log in",
		Data:    map[string]any{"flashes": h.popFlashes(w, r)},
	})
}

// LoginUser godoc
// @Summary Log in with username and password
// @Description Opens a session and sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginInput true "Credentials"
// @Success 303 "Redirect to /members-area"
// @Failure 400 {object} utils.Payload "Invalid input"
// @Failure 401 {object} utils.Payload "Invalid credentials"
// @Router /login [post]
func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		invalidInput(w)
		return
	}

	ticket, err := h.auth.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
				Success: false,
				Message: "Invalid credentials",
			})
			return
		}
		h.log.Error(r.Context(), "login failed", "error", err)
		internalError(w, "Failed to log in")
		return
	}

	// a previous session on this client is replaced, not left dangling
	if old := sessionToken(r); old != "" {
		if err := h.auth.Logout(r.Context(), old); err != nil {
			h.log.Warn(r.Context(), "failed to revoke previous session", "error", err)
		}
	}

	h.setSessionCookie(w, ticket)
	redirect(w, r, "/members-area")
}

// ShowSignup godoc
// @Summary Signup prompt
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /signup [get]
func (h *Handler) ShowSignup(w http.ResponseWriter, r *http.Request) {
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Create an account",
		Data:    map[string]any{"flashes": h.popFlashes(w, r)},
	})
}

// RegisterUser godoc
// @Summary Create an account
// @Description Creates a regular (non-member) user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body services.SignupInput true "New user"
// @Success 303 "Redirect to /login"
// @Failure 400 {object} utils.Payload "Field errors with the submitted form"
// @Failure 409 {object} utils.Payload "Username already exists"
// @Router /signup [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var input services.SignupInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		invalidInput(w)
		return
	}
	form := signupForm{FirstName: input.FirstName, LastName: input.LastName, Username: input.Username}

	_, err := h.auth.Signup(r.Context(), input)
	var verr *common.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
			Data:    map[string]any{"errors": verr.Fields, "form": form},
		})
		return
	case errors.Is(err, common.ErrDuplicateUsername):
		utils.JSONResponse(w, http.StatusConflict, utils.Payload{
			Success: false,
			Message: "Username already exists",
			Data:    map[string]any{"form": form},
		})
		return
	default:
		h.log.Error(r.Context(), "signup failed", "error", err)
		internalError(w, "Failed to create account")
		return
	}

	h.addFlash(w, r, "You were successfully registered and can login now")
	redirect(w, r, "/login")
}

// Logout godoc
// @Summary Log out
// @Description Revokes the session and clears the cookie.
// @Tags Auth
// @Success 303 "Redirect to /login"
// @Router /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), sessionToken(r)); err != nil {
		h.log.Error(r.Context(), "failed to revoke session", "error", err)
	}

	h.clearSessionCookie(w)
	h.addFlash(w, r, "You were logged out")
	redirect(w, r, "/login")
}

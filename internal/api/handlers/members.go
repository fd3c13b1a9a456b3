package handlers

import (
	"net/http"

	"github.com/rohits-web03/clubhouse/internal/api/middleware"
	"github.com/rohits-web03/clubhouse/internal/services"
	"github.com/rohits-web03/clubhouse/internal/utils"
)

type codeWordInput struct {
	CodeWord string `json:"codeWord"`
}

// ShowMembersArea godoc
// @Summary Membership gate
// @Description Members go straight to the board, everyone else logged in gets the code word prompt.
// @Tags Members
// @Produce json
// @Success 200 {object} utils.Payload "Code word prompt"
// @Success 302 "Redirect to /board or /login"
// @Router /members-area [get]
func (h *Handler) ShowMembersArea(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	user, ok := identity.User()
	if !ok {
		redirect(w, r, "/login")
		return
	}
	if user.IsMember() {
		redirect(w, r, "/board")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Enter the code word to become a member",
		Data: map[string]any{
			"user":    user,
			"flashes": h.popFlashes(w, r),
		},
	})
}

// SubmitCodeWord godoc
// @Summary Submit the membership code word
// @Description Always continues to the board. A correct code word upgrades the account first.
// @Tags Members
// @Accept json
// @Param body body codeWordInput true "Code word"
// @Success 303 "Redirect to /board"
// @Router /members-area [post]
func (h *Handler) SubmitCodeWord(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity.IsAnonymous() {
		redirect(w, r, "/login")
		return
	}

	// a malformed body counts as a wrong code word
	var input codeWordInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		input.CodeWord = ""
	}

	outcome, _, err := h.gate.SubmitCodeWord(r.Context(), identity, input.CodeWord)
	if err != nil {
		h.log.Error(r.Context(), "code word submission failed", "user_id", identity.UserID(), "error", err)
	}
	if outcome == services.OutcomeGranted {
		h.addFlash(w, r, "Welcome to the club")
	}
	redirect(w, r, "/board")
}

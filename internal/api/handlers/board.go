package handlers

import (
	"errors"
	"net/http"

	"github.com/rohits-web03/clubhouse/internal/api/middleware"
	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/utils"
)

type messageInput struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ShowBoard godoc
// @Summary List board messages
// @Description Newest first, each with its author resolved.
// @Tags Board
// @Produce json
// @Success 200 {object} utils.Payload
// @Success 302 "Redirect to /login"
// @Router /board [get]
func (h *Handler) ShowBoard(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	user, ok := identity.User()
	if !ok {
		redirect(w, r, "/login")
		return
	}

	entries, err := h.board.ListMessages(r.Context(), identity)
	if err != nil {
		h.log.Error(r.Context(), "failed to list messages", "error", err)
		internalError(w, "Failed to load messages")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Messages retrieved successfully",
		Data: map[string]any{
			"user":     user,
			"isMember": user.IsMember(),
			"messages": entries,
			"flashes":  h.popFlashes(w, r),
		},
	})
}

// PostMessage godoc
// @Summary Post a message
// @Tags Board
// @Accept json
// @Produce json
// @Param message body messageInput true "Message"
// @Success 303 "Redirect to /board"
// @Failure 400 {object} utils.Payload "Field errors with the submitted form"
// @Router /board [post]
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity.IsAnonymous() {
		redirect(w, r, "/login")
		return
	}

	var input messageInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		invalidInput(w)
		return
	}

	_, err := h.board.PostMessage(r.Context(), identity, input.Title, input.Text)
	var verr *common.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
			Data:    map[string]any{"errors": verr.Fields, "form": input},
		})
		return
	default:
		h.log.Error(r.Context(), "failed to post message", "error", err)
		internalError(w, "Failed to post message")
		return
	}

	h.addFlash(w, r, "Your message was recorded")
	redirect(w, r, "/board")
}

// ExportArchive godoc
// @Summary Export the board
// @Description Members only. Uploads a JSON snapshot and returns a temporary download URL.
// @Tags Board
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 403 {object} utils.Payload "Members only"
// @Failure 503 {object} utils.Payload "Archive storage not configured"
// @Router /board/archive [post]
func (h *Handler) ExportArchive(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity.IsAnonymous() {
		redirect(w, r, "/login")
		return
	}

	result, err := h.archiver.Export(r.Context(), identity)
	if err != nil {
		status := common.HTTPStatusFromError(err)
		message := "Failed to export board"
		switch status {
		case http.StatusForbidden:
			message = "Only members can export the board"
		case http.StatusServiceUnavailable:
			message = "Archive storage is not configured"
		default:
			h.log.Error(r.Context(), "board export failed", "error", err)
		}
		utils.JSONResponse(w, status, utils.Payload{Success: false, Message: message})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Archive created",
		Data:    result,
	})
}

package httpapi

import (
	"net/http"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Login")
	defer span.End()

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req, "Username and password are required"); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		logFailure(ctx, h.logger, "login failed", err, "username", req.Username)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetUser")
	defer span.End()

	userID := pathID(r, "id")
	item, err := h.authService.GetUser(ctx, userID)
	if err != nil {
		logFailure(ctx, h.logger, "get user failed", err, "user_id", userID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, userToDTO(item))
}

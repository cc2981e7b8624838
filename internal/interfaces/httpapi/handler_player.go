package httpapi

import (
	"net/http"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/player"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/usecase"
)

const playerNamesRequired = "First and last name are required"

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPlayers")
	defer span.End()

	teamID := strings.TrimSpace(r.URL.Query().Get("teamId"))
	players, err := h.playerService.ListPlayers(ctx, teamID)
	if err != nil {
		logFailure(ctx, h.logger, "list players failed", err, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPlayer")
	defer span.End()

	playerID := pathID(r, "id")
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		logFailure(ctx, h.logger, "get player failed", err, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req, playerNamesRequired); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.CreatePlayer(ctx, usecase.CreatePlayerInput{
		Player: player.Player{
			FirstName:         req.FirstName,
			LastName:          req.LastName,
			Email:             req.Email,
			ProfilePictureURL: req.ProfilePictureURL,
		},
		TeamID: req.TeamID,
	})
	if err != nil {
		logFailure(ctx, h.logger, "create player failed", err, "team_id", req.TeamID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, playerToDTO(item))
}

// UpdatePlayer replaces the player's fields and its whole team roster with teamIds.
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdatePlayer")
	defer span.End()

	playerID := pathID(r, "id")
	var req updatePlayerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req, playerNamesRequired); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := requireBodyID(playerID, req.ID); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.UpdatePlayer(ctx, playerID, usecase.UpdatePlayerInput{
		Player: player.Player{
			FirstName:         req.FirstName,
			LastName:          req.LastName,
			Email:             req.Email,
			ProfilePictureURL: req.ProfilePictureURL,
		},
		TeamIDs: req.TeamIDs,
	})
	if err != nil {
		logFailure(ctx, h.logger, "update player failed", err, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeletePlayer")
	defer span.End()

	playerID := pathID(r, "id")
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		logFailure(ctx, h.logger, "delete player failed", err, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

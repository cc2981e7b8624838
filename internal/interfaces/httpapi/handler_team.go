package httpapi

import (
	"net/http"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/team"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeams")
	defer span.End()

	leagueID := strings.TrimSpace(r.URL.Query().Get("leagueId"))
	teams, err := h.teamService.ListTeams(ctx, leagueID)
	if err != nil {
		logFailure(ctx, h.logger, "list teams failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeam")
	defer span.End()

	teamID := pathID(r, "id")
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		logFailure(ctx, h.logger, "get team failed", err, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateTeam")
	defer span.End()

	input, err := h.readTeam(r, "Team name and league are required")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.CreateTeam(ctx, input)
	if err != nil {
		logFailure(ctx, h.logger, "create team failed", err, "league_id", input.LeagueID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateTeam")
	defer span.End()

	teamID := pathID(r, "id")
	input, err := h.readTeam(r, "Team name and league ID are required")
	if err == nil {
		err = requireBodyID(teamID, input.ID)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.UpdateTeam(ctx, teamID, input)
	if err != nil {
		logFailure(ctx, h.logger, "update team failed", err, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteTeam")
	defer span.End()

	teamID := pathID(r, "id")
	if err := h.teamService.DeleteTeam(ctx, teamID); err != nil {
		logFailure(ctx, h.logger, "delete team failed", err, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) readTeam(r *http.Request, missingMsg string) (team.Team, error) {
	var req teamRequest
	if err := decodeJSON(r, &req); err != nil {
		return team.Team{}, err
	}
	if err := h.validateRequest(r.Context(), req, missingMsg); err != nil {
		return team.Team{}, err
	}

	return team.Team{
		ID:        strings.TrimSpace(req.ID),
		Name:      req.Name,
		LeagueID:  req.LeagueID,
		CaptainID: req.CaptainID,
		LogoURL:   req.LogoURL,
	}, nil
}

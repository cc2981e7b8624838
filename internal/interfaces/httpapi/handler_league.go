package httpapi

import (
	"net/http"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/league"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		logFailure(ctx, h.logger, "list leagues failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetLeague")
	defer span.End()

	leagueID := pathID(r, "id")
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		logFailure(ctx, h.logger, "get league failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateLeague")
	defer span.End()

	input, err := h.readLeague(r, "Missing required fields: name, startDate, endDate")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.CreateLeague(ctx, input)
	if err != nil {
		logFailure(ctx, h.logger, "create league failed", err, "name", input.Name)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, leagueToDTO(item))
}

func (h *Handler) UpdateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateLeague")
	defer span.End()

	leagueID := pathID(r, "id")
	input, err := h.readLeague(r, "Missing required fields")
	if err == nil {
		err = requireBodyID(leagueID, input.ID)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.UpdateLeague(ctx, leagueID, input)
	if err != nil {
		logFailure(ctx, h.logger, "update league failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteLeague")
	defer span.End()

	leagueID := pathID(r, "id")
	if err := h.leagueService.DeleteLeague(ctx, leagueID); err != nil {
		logFailure(ctx, h.logger, "delete league failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) readLeague(r *http.Request, missingMsg string) (league.League, error) {
	var req leagueRequest
	if err := decodeJSON(r, &req); err != nil {
		return league.League{}, err
	}
	if err := h.validateRequest(r.Context(), req, missingMsg); err != nil {
		return league.League{}, err
	}

	startDate, err := parseTimestamp("startDate", req.StartDate)
	if err != nil {
		return league.League{}, err
	}
	endDate, err := parseTimestamp("endDate", req.EndDate)
	if err != nil {
		return league.League{}, err
	}

	return league.League{
		ID:        strings.TrimSpace(req.ID),
		Name:      req.Name,
		Location:  req.Location,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

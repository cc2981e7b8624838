package httpapi

import (
	"net/http"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/match"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatches")
	defer span.End()

	leagueID := strings.TrimSpace(r.URL.Query().Get("leagueId"))
	matches, err := h.matchService.ListMatches(ctx, leagueID)
	if err != nil {
		logFailure(ctx, h.logger, "list matches failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetMatch")
	defer span.End()

	matchID := pathID(r, "id")
	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		logFailure(ctx, h.logger, "get match failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req, "Missing required fields for match"); err != nil {
		writeError(ctx, w, err)
		return
	}
	dateTime, err := parseTimestamp("dateTime", req.DateTime)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.CreateMatch(ctx, match.Match{
		LeagueID: req.LeagueID,
		TeamAID:  req.TeamAID,
		TeamBID:  req.TeamBID,
		DateTime: dateTime,
		Venue:    req.Venue,
		Overs:    *req.Overs,
		Status:   match.Status(strings.TrimSpace(req.Status)),
	})
	if err != nil {
		logFailure(ctx, h.logger, "create match failed", err, "league_id", req.LeagueID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, matchToDTO(item))
}

// UpdateMatch applies only the fields present in the body.
func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateMatch")
	defer span.End()

	matchID := pathID(r, "id")
	var req updateMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := requireBodyID(matchID, req.ID); err != nil {
		writeError(ctx, w, err)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.UpdateMatch(ctx, matchID, patch)
	if err != nil {
		logFailure(ctx, h.logger, "update match failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteMatch")
	defer span.End()

	matchID := pathID(r, "id")
	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		logFailure(ctx, h.logger, "delete match failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (req updateMatchRequest) toPatch() (match.Patch, error) {
	patch := match.Patch{
		LeagueID:        req.LeagueID,
		TeamAID:         req.TeamAID,
		TeamBID:         req.TeamBID,
		Venue:           req.Venue,
		Overs:           req.Overs,
		TossWonByTeamID: req.TossWonByTeamID.ptr(),
		ChoseTo:         req.ChoseTo.ptr(),
		Umpire1:         req.Umpire1.ptr(),
		Umpire2:         req.Umpire2.ptr(),
		Result:          req.Result.ptr(),
		ScorecardID:     req.ScorecardID.ptr(),
	}
	if req.DateTime != nil {
		dateTime, err := parseTimestamp("dateTime", *req.DateTime)
		if err != nil {
			return match.Patch{}, err
		}
		patch.DateTime = &dateTime
	}
	if req.Status != nil {
		status := match.Status(strings.TrimSpace(*req.Status))
		patch.Status = &status
	}
	return patch, nil
}

package httpapi

import (
	"net/http"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/scorecard"
)

// GetScorecardByMatch answers 200 with a null body when the match has no scorecard.
func (h *Handler) GetScorecardByMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetScorecardByMatch")
	defer span.End()

	matchID := pathID(r, "matchId")
	item, found, err := h.scorecardService.GetScorecardByMatch(ctx, matchID)
	if err != nil {
		logFailure(ctx, h.logger, "get scorecard failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeJSON(ctx, w, http.StatusOK, nil)
		return
	}

	writeJSON(ctx, w, http.StatusOK, scorecardToDTO(item))
}

// UpsertScorecard answers 201 when the id was new and 200 when an existing scorecard was replaced.
func (h *Handler) UpsertScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpsertScorecard")
	defer span.End()

	scorecardID := pathID(r, "id")
	var req upsertScorecardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := requireBodyID(scorecardID, req.ID); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, created, err := h.scorecardService.UpsertScorecard(ctx, scorecard.Scorecard{
		ID:       scorecardID,
		MatchID:  req.MatchID,
		Innings1: req.Innings1,
		Innings2: req.Innings2,
	})
	if err != nil {
		logFailure(ctx, h.logger, "upsert scorecard failed", err, "scorecard_id", scorecardID, "match_id", req.MatchID)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(ctx, w, status, scorecardToDTO(item))
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/scorecard"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type ScorecardService struct {
	scorecardRepo scorecard.Repository
	logger        *logging.Logger
}

func NewScorecardService(scorecardRepo scorecard.Repository, logger *logging.Logger) *ScorecardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScorecardService{
		scorecardRepo: scorecardRepo,
		logger:        logger,
	}
}

// GetScorecardByMatch reports found=false when the match has no scorecard yet.
func (s *ScorecardService) GetScorecardByMatch(ctx context.Context, matchID string) (scorecard.Scorecard, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.GetScorecardByMatch", attribute.String("match.id", matchID))
	defer span.End()

	item, found, err := s.scorecardRepo.GetByMatchID(ctx, strings.TrimSpace(matchID))
	if err != nil {
		return scorecard.Scorecard{}, false, fmt.Errorf("get scorecard by match: %w", err)
	}
	return item, found, nil
}

// UpsertScorecard stores the scorecard under the caller-chosen id and links its match.
// created reports whether the id was new.
func (s *ScorecardService) UpsertScorecard(ctx context.Context, input scorecard.Scorecard) (scorecard.Scorecard, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.UpsertScorecard",
		attribute.String("scorecard.id", input.ID),
		attribute.String("match.id", input.MatchID),
	)
	defer span.End()

	input.ID = strings.TrimSpace(input.ID)
	input.MatchID = strings.TrimSpace(input.MatchID)
	if err := input.Validate(); err != nil {
		return scorecard.Scorecard{}, false, err
	}

	out, created, err := s.scorecardRepo.Upsert(ctx, input)
	if err != nil {
		return scorecard.Scorecard{}, false, fmt.Errorf("upsert scorecard: %w", err)
	}

	if created {
		s.logger.InfoContext(ctx, "scorecard created", "scorecard_id", out.ID, "match_id", out.MatchID)
	}
	return out, created, nil
}

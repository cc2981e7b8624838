package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/match"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type MatchService struct {
	matchRepo match.Repository
	ids       *IDAllocator
	logger    *logging.Logger
}

func NewMatchService(matchRepo match.Repository, ids *IDAllocator, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo: matchRepo,
		ids:       ids,
		logger:    logger,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, leagueID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches", attribute.String("league.id", leagueID))
	defer span.End()

	matches, err := s.matchRepo.List(ctx, match.Filter{LeagueID: strings.TrimSpace(leagueID)})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch", attribute.String("match.id", matchID))
	defer span.End()

	item, exists, err := s.matchRepo.GetByID(ctx, strings.TrimSpace(matchID))
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, failure.NotFound("Match not found")
	}
	return item, nil
}

// CreateMatch schedules a match. Status defaults to Scheduled; the toss, umpires, result and
// scorecard are only ever set through UpdateMatch.
func (s *MatchService) CreateMatch(ctx context.Context, input match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	item := match.Match{
		LeagueID: strings.TrimSpace(input.LeagueID),
		TeamAID:  strings.TrimSpace(input.TeamAID),
		TeamBID:  strings.TrimSpace(input.TeamBID),
		DateTime: input.DateTime,
		Venue:    strings.TrimSpace(input.Venue),
		Overs:    input.Overs,
		Status:   input.Status,
	}
	if item.Status == "" {
		item.Status = match.StatusScheduled
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, err
	}

	created, err := createWithFreshID(ctx, s.ids, "match", func(id string) (match.Match, error) {
		item.ID = id
		return s.matchRepo.Create(ctx, item)
	})
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	s.logger.InfoContext(ctx, "match created", "match_id", created.ID, "league_id", created.LeagueID)
	return created, nil
}

// UpdateMatch applies a sparse patch. Any status may follow any other.
func (s *MatchService) UpdateMatch(ctx context.Context, matchID string, patch match.Patch) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch", attribute.String("match.id", matchID))
	defer span.End()

	if err := patch.Validate(); err != nil {
		return match.Match{}, err
	}

	updated, err := s.matchRepo.Patch(ctx, strings.TrimSpace(matchID), patch)
	if err != nil {
		return match.Match{}, fmt.Errorf("patch match: %w", err)
	}
	return updated, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch", attribute.String("match.id", matchID))
	defer span.End()

	if err := s.matchRepo.Delete(ctx, strings.TrimSpace(matchID)); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	s.logger.InfoContext(ctx, "match deleted", "match_id", matchID)
	return nil
}

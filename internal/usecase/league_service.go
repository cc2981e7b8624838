package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/league"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type LeagueService struct {
	leagueRepo league.Repository
	ids        *IDAllocator
	logger     *logging.Logger
}

func NewLeagueService(leagueRepo league.Repository, ids *IDAllocator, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		leagueRepo: leagueRepo,
		ids:        ids,
		logger:     logger,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague", attribute.String("league.id", leagueID))
	defer span.End()

	item, exists, err := s.leagueRepo.GetByID(ctx, strings.TrimSpace(leagueID))
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, failure.NotFound("League not found")
	}
	return item, nil
}

func (s *LeagueService) CreateLeague(ctx context.Context, input league.League) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return league.League{}, err
	}

	created, err := createWithFreshID(ctx, s.ids, "league", func(id string) (league.League, error) {
		input.ID = id
		return s.leagueRepo.Create(ctx, input)
	})
	if err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	s.logger.InfoContext(ctx, "league created", "league_id", created.ID)
	return created, nil
}

// UpdateLeague replaces every field of the league.
func (s *LeagueService) UpdateLeague(ctx context.Context, leagueID string, input league.League) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.UpdateLeague", attribute.String("league.id", leagueID))
	defer span.End()

	input.ID = strings.TrimSpace(leagueID)
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return league.League{}, err
	}

	updated, err := s.leagueRepo.Update(ctx, input)
	if err != nil {
		return league.League{}, fmt.Errorf("update league: %w", err)
	}
	return updated, nil
}

func (s *LeagueService) DeleteLeague(ctx context.Context, leagueID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.DeleteLeague", attribute.String("league.id", leagueID))
	defer span.End()

	if err := s.leagueRepo.Delete(ctx, strings.TrimSpace(leagueID)); err != nil {
		return fmt.Errorf("delete league: %w", err)
	}

	s.logger.InfoContext(ctx, "league deleted", "league_id", leagueID)
	return nil
}

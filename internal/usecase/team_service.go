package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/team"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type TeamService struct {
	teamRepo team.Repository
	ids      *IDAllocator
	logger   *logging.Logger
}

func NewTeamService(teamRepo team.Repository, ids *IDAllocator, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teamRepo: teamRepo,
		ids:      ids,
		logger:   logger,
	}
}

// ListTeams returns teams ordered by name; an empty leagueID lists every league.
func (s *TeamService) ListTeams(ctx context.Context, leagueID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams", attribute.String("league.id", leagueID))
	defer span.End()

	teams, err := s.teamRepo.List(ctx, team.Filter{LeagueID: strings.TrimSpace(leagueID)})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam", attribute.String("team.id", teamID))
	defer span.End()

	item, exists, err := s.teamRepo.GetByID(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, failure.NotFound("Team not found")
	}
	return item, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, input team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	input = normalizeTeam(input)
	if err := input.Validate(); err != nil {
		return team.Team{}, err
	}

	created, err := createWithFreshID(ctx, s.ids, "team", func(id string) (team.Team, error) {
		input.ID = id
		return s.teamRepo.Create(ctx, input)
	})
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", created.ID, "league_id", created.LeagueID)
	return created, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, teamID string, input team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam", attribute.String("team.id", teamID))
	defer span.End()

	input.ID = strings.TrimSpace(teamID)
	input = normalizeTeam(input)
	if err := input.Validate(); err != nil {
		return team.Team{}, err
	}

	updated, err := s.teamRepo.Update(ctx, input)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	return updated, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam", attribute.String("team.id", teamID))
	defer span.End()

	if err := s.teamRepo.Delete(ctx, strings.TrimSpace(teamID)); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", teamID)
	return nil
}

func normalizeTeam(t team.Team) team.Team {
	t.Name = strings.TrimSpace(t.Name)
	t.LeagueID = strings.TrimSpace(t.LeagueID)
	t.CaptainID = strings.TrimSpace(t.CaptainID)
	return t
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/player"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// CreatePlayerInput is a new player plus an optional first team.
type CreatePlayerInput struct {
	Player player.Player
	TeamID string
}

// UpdatePlayerInput carries the player's fields and the complete roster that replaces the old one.
type UpdatePlayerInput struct {
	Player  player.Player
	TeamIDs []string
}

type PlayerService struct {
	playerRepo player.Repository
	ids        *IDAllocator
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, ids *IDAllocator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		playerRepo: playerRepo,
		ids:        ids,
		logger:     logger,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers", attribute.String("team.id", teamID))
	defer span.End()

	players, err := s.playerRepo.List(ctx, player.Filter{TeamID: strings.TrimSpace(teamID)})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer", attribute.String("player.id", playerID))
	defer span.End()

	item, exists, err := s.playerRepo.GetByID(ctx, strings.TrimSpace(playerID))
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, failure.NotFound("Player not found")
	}
	return item, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	item := normalizePlayer(input.Player)
	if err := item.Validate(); err != nil {
		return player.Player{}, err
	}
	teamID := strings.TrimSpace(input.TeamID)

	created, err := createWithFreshID(ctx, s.ids, "player", func(id string) (player.Player, error) {
		item.ID = id
		return s.playerRepo.Create(ctx, item, teamID)
	})
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", created.ID, "team_id", teamID)
	return created, nil
}

// UpdatePlayer overwrites the player's fields and replaces its roster atomically.
func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer", attribute.String("player.id", playerID))
	defer span.End()

	item := normalizePlayer(input.Player)
	item.ID = strings.TrimSpace(playerID)
	if err := item.Validate(); err != nil {
		return player.Player{}, err
	}

	updated, err := s.playerRepo.ReplaceRoster(ctx, item, player.NormalizeTeamIDs(input.TeamIDs))
	if err != nil {
		return player.Player{}, fmt.Errorf("replace player roster: %w", err)
	}

	s.logger.DebugContext(ctx, "player roster replaced", "player_id", updated.ID, "team_count", len(updated.TeamIDs))
	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer", attribute.String("player.id", playerID))
	defer span.End()

	if err := s.playerRepo.Delete(ctx, strings.TrimSpace(playerID)); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID)
	return nil
}

func normalizePlayer(p player.Player) player.Player {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	return p
}

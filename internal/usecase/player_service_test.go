package usecase

import (
	"context"
	"testing"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/player"
	playermock "github.com/kylegeeksquad87/cricket-scorer-api/internal/mocks/domain/player"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_UpdatePlayer_ReplacesNormalizedRoster(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, newTestAllocator(), logging.NewNop())

	repo.
		On("ReplaceRoster",
			matchCtx(ctx),
			mock.MatchedBy(func(p player.Player) bool { return p.ID == "p1" && p.FirstName == "A" }),
			[]string{"t1", "t2"},
		).
		Return(player.Player{ID: "p1", FirstName: "A", LastName: "B", TeamIDs: []string{"t1", "t2"}}, nil).
		Once()

	got, err := service.UpdatePlayer(ctx, "p1", UpdatePlayerInput{
		Player:  player.Player{FirstName: " A ", LastName: "B"},
		TeamIDs: []string{"t1", "", "t2", "t1"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"t1", "t2"}, got.TeamIDs)
}

func TestPlayerService_UpdatePlayer_ValidationSkipsStore(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, newTestAllocator(), logging.NewNop())

	_, err := service.UpdatePlayer(context.Background(), "p1", UpdatePlayerInput{Player: player.Player{FirstName: "A"}})
	require.ErrorIs(t, err, failure.ErrValidation)
	require.Equal(t, "First and last name are required", failure.Hint(err))
}

func TestPlayerService_CreatePlayer_PassesInitialTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, newTestAllocator("p-new"), logging.NewNop())

	repo.
		On("Create", matchCtx(ctx), mock.MatchedBy(func(p player.Player) bool { return p.ID == "p-new" }), "t1").
		Return(player.Player{ID: "p-new", FirstName: "A", LastName: "B", TeamIDs: []string{"t1"}}, nil).
		Once()

	got, err := service.CreatePlayer(ctx, CreatePlayerInput{Player: player.Player{FirstName: "A", LastName: "B"}, TeamID: " t1 "})
	require.NoError(t, err)
	require.Equal(t, "p-new", got.ID)
	require.Equal(t, []string{"t1"}, got.TeamIDs)
}

func TestPlayerService_GetPlayer_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, newTestAllocator(), logging.NewNop())

	repo.On("GetByID", matchCtx(ctx), "ghost").Return(player.Player{}, false, nil).Once()

	_, err := service.GetPlayer(ctx, "ghost")
	require.ErrorIs(t, err, failure.ErrNotFound)
}

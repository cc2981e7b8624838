package usecase

import (
	"context"
	"testing"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/team"
	teammock "github.com/kylegeeksquad87/cricket-scorer-api/internal/mocks/domain/team"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamService_CreateTeam_TrimsAndAssignsID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := teammock.NewRepository(t)
	service := NewTeamService(repo, newTestAllocator("t1"), logging.NewNop())

	repo.
		On("Create", matchCtx(ctx), team.Team{ID: "t1", Name: "Lions", LeagueID: "l1", CaptainID: "p1"}).
		Return(func(_ context.Context, item team.Team) (team.Team, error) {
			item.PlayerIDs = []string{}
			return item, nil
		}).
		Once()

	got, err := service.CreateTeam(ctx, team.Team{Name: " Lions ", LeagueID: " l1", CaptainID: "p1 "})
	require.NoError(t, err)
	require.Equal(t, "t1", got.ID)
	require.Empty(t, got.PlayerIDs)
}

func TestTeamService_CreateTeam_ValidationSkipsStore(t *testing.T) {
	t.Parallel()

	repo := teammock.NewRepository(t)
	service := NewTeamService(repo, newTestAllocator("t1"), logging.NewNop())

	_, err := service.CreateTeam(context.Background(), team.Team{Name: "Lions"})
	require.ErrorIs(t, err, failure.ErrValidation)
	require.Equal(t, "Team name and league are required", failure.Hint(err))
}

func TestTeamService_ListTeams_PassesLeagueFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := teammock.NewRepository(t)
	service := NewTeamService(repo, newTestAllocator(), logging.NewNop())

	repo.
		On("List", matchCtx(ctx), team.Filter{LeagueID: "l1"}).
		Return([]team.Team{{ID: "t1", LeagueID: "l1", PlayerIDs: []string{}}}, nil).
		Once()

	got, err := service.ListTeams(ctx, " l1 ")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestTeamService_UpdateTeam_ReferentialErrorPassesThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := teammock.NewRepository(t)
	service := NewTeamService(repo, newTestAllocator(), logging.NewNop())

	repo.
		On("Update", matchCtx(ctx), mock.MatchedBy(func(item team.Team) bool { return item.ID == "t1" })).
		Return(team.Team{}, failure.New(failure.ErrReferential, "League or captain does not exist.")).
		Once()

	_, err := service.UpdateTeam(ctx, "t1", team.Team{Name: "Lions", LeagueID: "ghost"})
	require.ErrorIs(t, err, failure.ErrReferential)
	require.Equal(t, "League or captain does not exist.", failure.Hint(err))
}

func TestTeamService_GetTeam_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := teammock.NewRepository(t)
	service := NewTeamService(repo, newTestAllocator(), logging.NewNop())

	repo.On("GetByID", matchCtx(ctx), "missing").Return(team.Team{}, false, nil).Once()

	_, err := service.GetTeam(ctx, "missing")
	require.ErrorIs(t, err, failure.ErrNotFound)
}

package sqlstore

import (
	"context"
	"testing"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/team"
	"github.com/stretchr/testify/require"
)

var teamFilterAll = team.Filter{}

func TestTeamRepository_SameNameInLeagueIsConflict(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	mustCreateLeague(t, store, "l1", "L1")
	mustCreateTeam(t, store, "x", "Strikers", "l1")

	_, err := NewTeamRepository(store).Create(ctx, team.Team{ID: "y", Name: "Strikers", LeagueID: "l1"})
	require.ErrorIs(t, err, failure.ErrConflict)
	require.Equal(t, "Team name already exists in this league.", failure.Hint(err))

	teams, err := NewTeamRepository(store).List(ctx, team.Filter{LeagueID: "l1"})
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, "x", teams[0].ID)
}

func TestTeamRepository_SameNameAcrossLeaguesIsAllowed(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	mustCreateLeague(t, store, "l1", "L1")
	mustCreateLeague(t, store, "l2", "L2")
	mustCreateTeam(t, store, "x", "Strikers", "l1")
	mustCreateTeam(t, store, "y", "Strikers", "l2")
}

func TestTeamRepository_UnknownLeagueIsReferential(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	_, err := NewTeamRepository(store).Create(context.Background(), team.Team{ID: "x", Name: "Strikers", LeagueID: "nope"})
	require.ErrorIs(t, err, failure.ErrReferential)
}

func TestTeamRepository_ListCarriesEveryMember(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	mustCreateLeague(t, store, "l1", "L1")
	mustCreateTeam(t, store, "t1", "Tigers", "l1")
	mustCreateTeam(t, store, "t2", "Lions", "l1")
	mustCreatePlayer(t, store, "p1", "A", "One", "t1")
	mustCreatePlayer(t, store, "p2", "B", "Two", "t1")
	mustCreatePlayer(t, store, "p3", "C", "Three", "")

	teams, err := NewTeamRepository(store).List(ctx, team.Filter{LeagueID: "l1"})
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Equal(t, "Lions", teams[0].Name)
	require.Empty(t, teams[0].PlayerIDs)
	require.ElementsMatch(t, []string{"p1", "p2"}, teams[1].PlayerIDs)
}

func TestTeamRepository_UpdateAndCaptainSetNull(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	repo := NewTeamRepository(store)
	mustCreateLeague(t, store, "l1", "L1")
	mustCreateTeam(t, store, "t1", "Tigers", "l1")
	mustCreatePlayer(t, store, "p1", "A", "B", "t1")

	updated, err := repo.Update(ctx, team.Team{ID: "t1", Name: "Tigers XI", LeagueID: "l1", CaptainID: "p1", LogoURL: "https://img/t.png"})
	require.NoError(t, err)
	require.Equal(t, "p1", updated.CaptainID)
	require.Equal(t, []string{"p1"}, updated.PlayerIDs)

	require.NoError(t, NewPlayerRepository(store).Delete(ctx, "p1"))

	got, found, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.True(t, found)
	require.Empty(t, got.CaptainID)
	require.Empty(t, got.PlayerIDs)

	_, err = repo.Update(ctx, team.Team{ID: "missing", Name: "x", LeagueID: "l1"})
	require.ErrorIs(t, err, failure.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "missing"), failure.ErrNotFound)
}

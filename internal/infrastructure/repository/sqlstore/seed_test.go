package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/player"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/user"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/id"
	"github.com/stretchr/testify/require"
)

func TestSeedAdmin_CreatesOnce(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SeedAdmin(ctx, id.NewSequence("admin-1")))
	// An exhausted generator proves the second call never asks for an id.
	require.NoError(t, store.SeedAdmin(ctx, id.NewSequence()))

	users := NewUserRepository(store)
	got, found, err := users.GetByCredentials(ctx, "admin", "password")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "admin-1", got.ID)
	require.Equal(t, user.RoleAdmin, got.Role)
	require.Equal(t, "admin@example.com", got.Email)

	_, found, err = users.GetByCredentials(ctx, "admin", "wrong")
	require.NoError(t, err)
	require.False(t, found)

	byID, found, err := users.GetByID(ctx, "admin-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "admin", byID.Username)
}

func TestSeedSampleData_IsIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.SeedSampleData(ctx, now))
	require.NoError(t, store.SeedSampleData(ctx, now))

	leagues, err := NewLeagueRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, leagues, 2)

	lions, err := NewPlayerRepository(store).List(ctx, player.Filter{TeamID: "t_sample_lions"})
	require.NoError(t, err)
	require.Len(t, lions, 2)

	m1, found, err := NewMatchRepository(store).GetByID(ctx, "m_sample_1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "sc_m_sample_1", m1.ScorecardID)

	sc, found, err := NewScorecardRepository(store).GetByMatchID(ctx, "m_sample_1")
	require.NoError(t, err)
	require.True(t, found)
	require.Contains(t, string(sc.Innings1), `"score":180`)
}

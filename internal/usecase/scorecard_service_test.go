package usecase

import (
	"context"
	"testing"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/scorecard"
	scorecardmock "github.com/kylegeeksquad87/cricket-scorer-api/internal/mocks/domain/scorecard"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func TestScorecardService_UpsertScorecard_RequiresMatch(t *testing.T) {
	t.Parallel()

	repo := scorecardmock.NewRepository(t)
	service := NewScorecardService(repo, logging.NewNop())

	_, _, err := service.UpsertScorecard(context.Background(), scorecard.Scorecard{ID: "s1"})
	require.ErrorIs(t, err, failure.ErrValidation)
	require.Equal(t, "Match ID is required for scorecard", failure.Hint(err))
}

func TestScorecardService_UpsertScorecard_ReportsCreated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := scorecardmock.NewRepository(t)
	service := NewScorecardService(repo, logging.NewNop())

	input := scorecard.Scorecard{ID: "s1", MatchID: "m1", Innings1: scorecard.Innings(`{"score":1}`)}
	repo.On("Upsert", matchCtx(ctx), input).Return(input, true, nil).Once()

	got, created, err := service.UpsertScorecard(ctx, input)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "s1", got.ID)
}

func TestScorecardService_UpsertScorecard_RejectsMalformedInnings(t *testing.T) {
	t.Parallel()

	repo := scorecardmock.NewRepository(t)
	service := NewScorecardService(repo, logging.NewNop())

	_, _, err := service.UpsertScorecard(context.Background(), scorecard.Scorecard{ID: "s1", MatchID: "m1", Innings1: scorecard.Innings(`{"score":`)})
	require.ErrorIs(t, err, failure.ErrValidation)
}

func TestScorecardService_GetScorecardByMatch_Missing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := scorecardmock.NewRepository(t)
	service := NewScorecardService(repo, logging.NewNop())

	repo.On("GetByMatchID", matchCtx(ctx), "m1").Return(scorecard.Scorecard{}, false, nil).Once()

	_, found, err := service.GetScorecardByMatch(ctx, "m1")
	require.NoError(t, err)
	require.False(t, found)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	idgen "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/id"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func TestCreateWithFreshID_GivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	alloc := NewIDAllocator(idgen.NewSequence("a", "b", "c", "d"), 3, logging.NewNop())
	var tried []string
	_, err := createWithFreshID(context.Background(), alloc, "league", func(id string) (string, error) {
		tried = append(tried, id)
		return "", failure.New(failure.ErrIDCollision, "Identifier already in use")
	})

	require.ErrorIs(t, err, failure.ErrIDCollision)
	require.Equal(t, []string{"a", "b", "c"}, tried)
}

func TestCreateWithFreshID_GeneratorFailure(t *testing.T) {
	t.Parallel()

	alloc := NewIDAllocator(idgen.NewSequence(), 3, logging.NewNop())
	_, err := createWithFreshID(context.Background(), alloc, "team", func(string) (int, error) {
		t.Fatal("insert must not run without an id")
		return 0, nil
	})
	require.Error(t, err)
	require.Nil(t, failure.KindOf(err))
}

func TestCreateWithFreshID_OtherErrorsStopImmediately(t *testing.T) {
	t.Parallel()

	alloc := NewIDAllocator(idgen.NewSequence("a", "b"), 0, nil)
	boom := errors.New("boom")
	calls := 0
	_, err := createWithFreshID(context.Background(), alloc, "match", func(string) (int, error) {
		calls++
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}

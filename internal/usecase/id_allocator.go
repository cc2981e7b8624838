package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	idgen "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/id"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
)

const DefaultIDMaxAttempts = 3

// IDAllocator hands out ids for new rows and retries inserts that hit a primary-key collision.
type IDAllocator struct {
	gen         idgen.Generator
	maxAttempts int
	logger      *logging.Logger
}

func NewIDAllocator(gen idgen.Generator, maxAttempts int, logger *logging.Logger) *IDAllocator {
	if maxAttempts < 1 {
		maxAttempts = DefaultIDMaxAttempts
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &IDAllocator{gen: gen, maxAttempts: maxAttempts, logger: logger}
}

// createWithFreshID calls insert with a new id until it succeeds, fails with anything but an
// id collision, or runs out of attempts.
func createWithFreshID[T any](ctx context.Context, a *IDAllocator, entity string, insert func(id string) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		id, err := a.gen.NewID()
		if err != nil {
			return zero, fmt.Errorf("generate %s id: %w", entity, err)
		}

		out, err := insert(id)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, failure.ErrIDCollision) {
			return zero, err
		}

		lastErr = err
		a.logger.WarnContext(ctx, "id collision, retrying with a fresh id",
			"entity", entity,
			"id", id,
			"attempt", attempt,
		)
	}

	return zero, fmt.Errorf("create %s after %d attempts: %w", entity, a.maxAttempts, lastErr)
}

package scorecard

import "context"

// Repository describes scorecard persistence needs from use cases.
type Repository interface {
	GetByMatchID(ctx context.Context, matchID string) (Scorecard, bool, error)
	// Upsert creates the scorecard or updates it in place, keeping the owning match's
	// scorecard reference in step. created reports whether a new row was inserted.
	Upsert(ctx context.Context, item Scorecard) (result Scorecard, created bool, err error)
}

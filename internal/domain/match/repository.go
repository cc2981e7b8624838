package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) (Match, error)
	Patch(ctx context.Context, matchID string, patch Patch) (Match, error)
	Delete(ctx context.Context, matchID string) error
}

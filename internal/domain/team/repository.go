package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, item Team) (Team, error)
	Delete(ctx context.Context, teamID string) error
}

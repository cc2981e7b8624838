package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	// Create inserts the player and, when initialTeamID is set, its first membership, atomically.
	Create(ctx context.Context, item Player, initialTeamID string) (Player, error)
	// ReplaceRoster overwrites the player's fields and replaces its whole membership set with
	// teamIDs in one transaction. On failure the previous row and roster are kept.
	ReplaceRoster(ctx context.Context, item Player, teamIDs []string) (Player, error)
	Delete(ctx context.Context, playerID string) error
}

package user

import "context"

// Repository describes user lookups needed by authentication.
type Repository interface {
	GetByID(ctx context.Context, userID string) (User, bool, error)
	GetByCredentials(ctx context.Context, username, password string) (User, bool, error)
}

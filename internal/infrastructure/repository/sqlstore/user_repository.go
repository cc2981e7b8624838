package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/user"
	qb "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/querybuilder"
)

type userTableModel struct {
	ID                string         `db:"id"`
	Username          string         `db:"username"`
	Password          string         `db:"password"`
	Email             sql.NullString `db:"email"`
	Role              string         `db:"role"`
	ProfilePictureURL sql.NullString `db:"profile_picture_url"`
}

var userColumns = []string{"id", "username", "password", "email", "role", "profile_picture_url"}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:                m.ID,
		Username:          m.Username,
		Password:          m.Password,
		Email:             stringOrEmpty(m.Email),
		Role:              user.Role(m.Role),
		ProfilePictureURL: stringOrEmpty(m.ProfilePictureURL),
	}
}

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by id", qb.Eq("id", userID))
}

// GetByCredentials matches username and password verbatim.
func (r *UserRepository) GetByCredentials(ctx context.Context, username, password string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by credentials", qb.Eq("username", username), qb.Eq("password", password))
}

func (r *UserRepository) getOne(ctx context.Context, op string, conditions ...qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select(userColumns...).From("users").Where(conditions...).ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row userTableModel
	if err := r.store.db.GetContext(ctx, &row, r.store.db.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, r.store.translate(err, op, errorHints{})
	}
	return row.toDomain(), true, nil
}

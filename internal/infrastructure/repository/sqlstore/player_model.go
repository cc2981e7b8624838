package sqlstore

import (
	"database/sql"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/player"
)

type playerTableModel struct {
	ID                string         `db:"id"`
	FirstName         string         `db:"first_name"`
	LastName          string         `db:"last_name"`
	Email             sql.NullString `db:"email"`
	ProfilePictureURL sql.NullString `db:"profile_picture_url"`
}

var playerColumns = []string{"id", "first_name", "last_name", "email", "profile_picture_url"}

func playerModelFrom(item player.Player) playerTableModel {
	return playerTableModel{
		ID:                item.ID,
		FirstName:         item.FirstName,
		LastName:          item.LastName,
		Email:             nullString(item.Email),
		ProfilePictureURL: nullString(item.ProfilePictureURL),
	}
}

func (m playerTableModel) toDomain(teamIDs []string) player.Player {
	return player.Player{
		ID:                m.ID,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Email:             stringOrEmpty(m.Email),
		ProfilePictureURL: stringOrEmpty(m.ProfilePictureURL),
		TeamIDs:           emptyIfNil(teamIDs),
	}
}

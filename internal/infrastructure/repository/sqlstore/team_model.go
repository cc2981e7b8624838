package sqlstore

import (
	"database/sql"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/team"
)

type teamTableModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	LeagueID  string         `db:"league_id"`
	CaptainID sql.NullString `db:"captain_id"`
	LogoURL   sql.NullString `db:"logo_url"`
}

var teamColumns = []string{"id", "name", "league_id", "captain_id", "logo_url"}

func teamModelFrom(item team.Team) teamTableModel {
	return teamTableModel{
		ID:        item.ID,
		Name:      item.Name,
		LeagueID:  item.LeagueID,
		CaptainID: nullString(item.CaptainID),
		LogoURL:   nullString(item.LogoURL),
	}
}

func (m teamTableModel) toDomain(playerIDs []string) team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		LeagueID:  m.LeagueID,
		CaptainID: stringOrEmpty(m.CaptainID),
		LogoURL:   stringOrEmpty(m.LogoURL),
		PlayerIDs: emptyIfNil(playerIDs),
	}
}

package sqlstore

import (
	"database/sql"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/league"
)

type leagueTableModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Location  sql.NullString `db:"location"`
	StartDate dbTime         `db:"start_date"`
	EndDate   dbTime         `db:"end_date"`
}

func leagueModelFrom(item league.League) leagueTableModel {
	return leagueTableModel{
		ID:        item.ID,
		Name:      item.Name,
		Location:  nullString(item.Location),
		StartDate: dbTime(item.StartDate.UTC()),
		EndDate:   dbTime(item.EndDate.UTC()),
	}
}

func (m leagueTableModel) toDomain(teams []league.TeamSummary) league.League {
	if teams == nil {
		teams = []league.TeamSummary{}
	}
	return league.League{
		ID:        m.ID,
		Name:      m.Name,
		Location:  stringOrEmpty(m.Location),
		StartDate: m.StartDate.Time(),
		EndDate:   m.EndDate.Time(),
		Teams:     teams,
	}
}

type teamSummaryModel struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	LeagueID string `db:"league_id"`
}

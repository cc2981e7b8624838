package sqlstore

import (
	"database/sql"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/match"
)

type matchTableModel struct {
	ID              string         `db:"id"`
	LeagueID        string         `db:"league_id"`
	TeamAID         string         `db:"team_a_id"`
	TeamBID         string         `db:"team_b_id"`
	DateTime        dbTime         `db:"date_time"`
	Venue           sql.NullString `db:"venue"`
	Overs           sql.NullInt64  `db:"overs"`
	Status          sql.NullString `db:"status"`
	TossWonByTeamID sql.NullString `db:"toss_won_by_team_id"`
	ChoseTo         sql.NullString `db:"chose_to"`
	Umpire1         sql.NullString `db:"umpire1"`
	Umpire2         sql.NullString `db:"umpire2"`
	Result          sql.NullString `db:"result"`
	ScorecardID     sql.NullString `db:"scorecard_id"`
}

var matchColumns = []string{
	"id", "league_id", "team_a_id", "team_b_id", "date_time", "venue", "overs", "status",
	"toss_won_by_team_id", "chose_to", "umpire1", "umpire2", "result", "scorecard_id",
}

func matchModelFrom(item match.Match) matchTableModel {
	return matchTableModel{
		ID:              item.ID,
		LeagueID:        item.LeagueID,
		TeamAID:         item.TeamAID,
		TeamBID:         item.TeamBID,
		DateTime:        dbTime(item.DateTime.UTC()),
		Venue:           nullString(item.Venue),
		Overs:           sql.NullInt64{Int64: int64(item.Overs), Valid: true},
		Status:          nullString(string(item.Status)),
		TossWonByTeamID: nullString(item.TossWonByTeamID),
		ChoseTo:         nullString(string(item.ChoseTo)),
		Umpire1:         nullString(item.Umpire1),
		Umpire2:         nullString(item.Umpire2),
		Result:          nullString(item.Result),
		ScorecardID:     nullString(item.ScorecardID),
	}
}

func (m matchTableModel) toDomain() match.Match {
	overs := match.DefaultOvers
	if m.Overs.Valid {
		overs = int(m.Overs.Int64)
	}
	status := match.StatusScheduled
	if m.Status.Valid {
		status = match.Status(m.Status.String)
	}
	return match.Match{
		ID:              m.ID,
		LeagueID:        m.LeagueID,
		TeamAID:         m.TeamAID,
		TeamBID:         m.TeamBID,
		DateTime:        m.DateTime.Time(),
		Venue:           stringOrEmpty(m.Venue),
		Overs:           overs,
		Status:          status,
		TossWonByTeamID: stringOrEmpty(m.TossWonByTeamID),
		ChoseTo:         match.TossChoice(stringOrEmpty(m.ChoseTo)),
		Umpire1:         stringOrEmpty(m.Umpire1),
		Umpire2:         stringOrEmpty(m.Umpire2),
		Result:          stringOrEmpty(m.Result),
		ScorecardID:     stringOrEmpty(m.ScorecardID),
	}
}

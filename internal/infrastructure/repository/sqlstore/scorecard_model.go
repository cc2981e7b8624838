package sqlstore

import (
	"database/sql"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/scorecard"
)

type scorecardTableModel struct {
	ID       string         `db:"id"`
	MatchID  string         `db:"match_id"`
	Innings1 sql.NullString `db:"innings1"`
	Innings2 sql.NullString `db:"innings2"`
}

var scorecardColumns = []string{"id", "match_id", "innings1", "innings2"}

func scorecardModelFrom(item scorecard.Scorecard) scorecardTableModel {
	return scorecardTableModel{
		ID:       item.ID,
		MatchID:  item.MatchID,
		Innings1: inningsToNull(item.Innings1),
		Innings2: inningsToNull(item.Innings2),
	}
}

func (m scorecardTableModel) toDomain() scorecard.Scorecard {
	return scorecard.Scorecard{
		ID:       m.ID,
		MatchID:  m.MatchID,
		Innings1: inningsFromNull(m.Innings1),
		Innings2: inningsFromNull(m.Innings2),
	}
}

// Innings travel as text; postgres casts it to jsonb on write.
func inningsToNull(v scorecard.Innings) sql.NullString {
	if v.IsNull() {
		return sql.NullString{}
	}
	return sql.NullString{String: string(v), Valid: true}
}

func inningsFromNull(v sql.NullString) scorecard.Innings {
	if !v.Valid {
		return nil
	}
	return scorecard.Innings(v.String)
}

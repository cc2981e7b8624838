package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/match"
	qb "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/querybuilder"
)

var matchHints = errorHints{
	conflict:            "Scorecard is already linked to another match.",
	referential:         "League or team does not exist.",
	uniqueAsReferential: true,
}

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	builder := qb.Select(matchColumns...).From("matches").OrderBy("date_time DESC", "id")
	if filter.LeagueID != "" {
		builder = builder.Where(qb.Eq("league_id", filter.LeagueID))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, r.store.db, &rows, r.store.db.Rebind(query), args...); err != nil {
		return nil, r.store.translate(err, "select matches", matchHints)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	item, found, err := getMatch(ctx, r.store.db, matchID)
	if err != nil {
		return match.Match{}, false, r.store.translate(err, "get match by id", matchHints)
	}
	return item, found, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel("matches", matchModelFrom(item), "")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.store.db.ExecContext(ctx, r.store.db.Rebind(query), args...); err != nil {
		return match.Match{}, r.store.translate(err, "insert match", matchHints)
	}
	return item, nil
}

// Patch writes only the fields present in p and returns the stored row.
func (r *MatchRepository) Patch(ctx context.Context, matchID string, p match.Patch) (match.Match, error) {
	query, args, err := patchQuery(matchID, p)
	if err != nil {
		return match.Match{}, err
	}

	var out match.Match
	err = r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
		if err != nil {
			return err
		}
		if err := requireAffected(res, "Match not found"); err != nil {
			return err
		}
		updated, _, err := getMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return match.Match{}, r.store.translate(err, "patch match", matchHints)
	}
	return out, nil
}

// Delete removes the match and its scorecard.
func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	return r.store.deleteByID(ctx, "matches", matchID, "Match not found")
}

func patchQuery(matchID string, p match.Patch) (string, []any, error) {
	update := qb.Update("matches")
	required := []struct {
		column string
		value  *string
	}{
		{"league_id", p.LeagueID},
		{"team_a_id", p.TeamAID},
		{"team_b_id", p.TeamBID},
	}
	for _, f := range required {
		if f.value != nil {
			update = update.Set(f.column, *f.value)
		}
	}
	if p.DateTime != nil {
		update = update.Set("date_time", dbTime(p.DateTime.UTC()))
	}
	if p.Venue != nil {
		update = update.Set("venue", *p.Venue)
	}
	if p.Overs != nil {
		update = update.Set("overs", *p.Overs)
	}
	if p.Status != nil {
		update = update.Set("status", string(*p.Status))
	}

	// Empty strings clear these columns.
	nullable := []struct {
		column string
		value  *string
	}{
		{"toss_won_by_team_id", p.TossWonByTeamID},
		{"chose_to", p.ChoseTo},
		{"umpire1", p.Umpire1},
		{"umpire2", p.Umpire2},
		{"result", p.Result},
		{"scorecard_id", p.ScorecardID},
	}
	for _, f := range nullable {
		if f.value != nil {
			update = update.Set(f.column, nullString(*f.value))
		}
	}

	if !update.HasSets() {
		return "", nil, failure.Validation("No update fields provided")
	}
	query, args, err := update.Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build patch match query: %w", err)
	}
	return query, args, nil
}

func getMatch(ctx context.Context, q sqlx.ExtContext, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, q, &row, q.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, err
	}
	return row.toDomain(), true, nil
}

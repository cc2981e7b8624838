package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/scorecard"
	qb "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/querybuilder"
)

type ScorecardRepository struct {
	store *Store
}

func NewScorecardRepository(store *Store) *ScorecardRepository {
	return &ScorecardRepository{store: store}
}

func (r *ScorecardRepository) GetByMatchID(ctx context.Context, matchID string) (scorecard.Scorecard, bool, error) {
	item, found, err := getScorecard(ctx, r.store.db, "match_id", matchID)
	if err != nil {
		return scorecard.Scorecard{}, false, r.store.translate(err, "get scorecard by match", errorHints{})
	}
	return item, found, nil
}

// Upsert writes the scorecard and points its match at it, all in one transaction.
// An existing scorecard moved to another match releases the old match's reference.
func (r *ScorecardRepository) Upsert(ctx context.Context, item scorecard.Scorecard) (scorecard.Scorecard, bool, error) {
	hints := errorHints{
		conflict:    fmt.Sprintf("Match with ID %s already has a scorecard.", item.MatchID),
		referential: fmt.Sprintf("Match with ID %s does not exist.", item.MatchID),
	}
	model := scorecardModelFrom(item)

	var (
		out     scorecard.Scorecard
		created bool
	)
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		existing, found, err := getScorecard(ctx, tx, "id", item.ID)
		if err != nil {
			return err
		}

		if found {
			query, args, err := qb.UpdateModel("scorecards", model, "id")
			if err != nil {
				return fmt.Errorf("build update scorecard query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return err
			}
			if existing.MatchID != item.MatchID {
				if err := releaseMatchScorecard(ctx, tx, existing.MatchID, item.ID); err != nil {
					return err
				}
			}
		} else {
			query, args, err := qb.InsertModel("scorecards", model, "")
			if err != nil {
				return fmt.Errorf("build insert scorecard query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return err
			}
			created = true
		}

		if err := linkMatchScorecard(ctx, tx, item.MatchID, item.ID); err != nil {
			return err
		}

		stored, _, err := getScorecard(ctx, tx, "id", item.ID)
		if err != nil {
			return err
		}
		out = stored
		return nil
	})
	if err != nil {
		return scorecard.Scorecard{}, false, r.store.translate(err, "upsert scorecard", hints)
	}

	r.store.logger.DebugContext(ctx, "scorecard upserted", "scorecard_id", out.ID, "match_id", out.MatchID, "created", created)
	return out, created, nil
}

func linkMatchScorecard(ctx context.Context, tx *sqlx.Tx, matchID, scorecardID string) error {
	query, args, err := qb.Update("matches").
		Set("scorecard_id", scorecardID).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build link scorecard query: %w", err)
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(query), args...)
	return err
}

func releaseMatchScorecard(ctx context.Context, tx *sqlx.Tx, matchID, scorecardID string) error {
	query, args, err := qb.Update("matches").
		Set("scorecard_id", nullString("")).
		Where(qb.Eq("id", matchID), qb.Eq("scorecard_id", scorecardID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build release scorecard query: %w", err)
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(query), args...)
	return err
}

func getScorecard(ctx context.Context, q sqlx.ExtContext, column, value string) (scorecard.Scorecard, bool, error) {
	query, args, err := qb.Select(scorecardColumns...).From("scorecards").Where(qb.Eq(column, value)).ToSQL()
	if err != nil {
		return scorecard.Scorecard{}, false, fmt.Errorf("build get scorecard query: %w", err)
	}

	var row scorecardTableModel
	if err := sqlx.GetContext(ctx, q, &row, q.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return scorecard.Scorecard{}, false, nil
		}
		return scorecard.Scorecard{}, false, err
	}
	return row.toDomain(), true, nil
}

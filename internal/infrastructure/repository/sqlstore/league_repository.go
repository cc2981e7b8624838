package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/league"
	qb "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/querybuilder"
)

var leagueHints = errorHints{conflict: "League name already exists."}

type LeagueRepository struct {
	store *Store
}

func NewLeagueRepository(store *Store) *LeagueRepository {
	return &LeagueRepository{store: store}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("id", "name", "location", "start_date", "end_date").
		From("leagues").
		OrderBy("start_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := sqlx.SelectContext(ctx, r.store.db, &rows, r.store.db.Rebind(query), args...); err != nil {
		return nil, r.store.translate(err, "select leagues", leagueHints)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	teams, err := listTeamSummaries(ctx, r.store.db, ids)
	if err != nil {
		return nil, r.store.translate(err, "select league teams", leagueHints)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(teams[row.ID]))
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	item, found, err := getLeague(ctx, r.store.db, leagueID)
	if err != nil {
		return league.League{}, false, r.store.translate(err, "get league by id", leagueHints)
	}
	return item, found, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	query, args, err := qb.InsertModel("leagues", leagueModelFrom(item), "")
	if err != nil {
		return league.League{}, fmt.Errorf("build insert league query: %w", err)
	}
	if _, err := r.store.db.ExecContext(ctx, r.store.db.Rebind(query), args...); err != nil {
		return league.League{}, r.store.translate(err, "insert league", leagueHints)
	}

	item.Teams = []league.TeamSummary{}
	return item, nil
}

// Update overwrites every column and returns the row with its current teams.
func (r *LeagueRepository) Update(ctx context.Context, item league.League) (league.League, error) {
	query, args, err := qb.UpdateModel("leagues", leagueModelFrom(item), "id")
	if err != nil {
		return league.League{}, fmt.Errorf("build update league query: %w", err)
	}

	var out league.League
	err = r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
		if err != nil {
			return err
		}
		if err := requireAffected(res, "League not found"); err != nil {
			return err
		}
		updated, _, err := getLeague(ctx, tx, item.ID)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return league.League{}, r.store.translate(err, "update league", leagueHints)
	}
	return out, nil
}

// Delete removes the league; its teams, memberships and matches go with it.
func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) error {
	return r.store.deleteByID(ctx, "leagues", leagueID, "League not found")
}

func getLeague(ctx context.Context, q sqlx.ExtContext, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select("id", "name", "location", "start_date", "end_date").
		From("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := sqlx.GetContext(ctx, q, &row, q.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, err
	}

	teams, err := listTeamSummaries(ctx, q, []string{leagueID})
	if err != nil {
		return league.League{}, false, err
	}
	return row.toDomain(teams[leagueID]), true, nil
}

// listTeamSummaries groups the teams of leagueIDs by league, ordered by name.
func listTeamSummaries(ctx context.Context, q sqlx.ExtContext, leagueIDs []string) (map[string][]league.TeamSummary, error) {
	out := make(map[string][]league.TeamSummary, len(leagueIDs))
	if len(leagueIDs) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("id", "name", "league_id").
		From("teams").
		Where(qb.InStrings("league_id", leagueIDs)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team summaries query: %w", err)
	}

	var rows []teamSummaryModel
	if err := sqlx.SelectContext(ctx, q, &rows, q.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.LeagueID] = append(out[row.LeagueID], league.TeamSummary{
			ID:       row.ID,
			Name:     row.Name,
			LeagueID: row.LeagueID,
		})
	}
	return out, nil
}

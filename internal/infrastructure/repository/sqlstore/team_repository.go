package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/team"
	qb "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/querybuilder"
)

var teamHints = errorHints{
	conflict:    "Team name already exists in this league.",
	referential: "League or captain does not exist.",
}

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	builder := qb.Select(teamColumns...).From("teams").OrderBy("name", "id")
	if filter.LeagueID != "" {
		builder = builder.Where(qb.Eq("league_id", filter.LeagueID))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, r.store.db, &rows, r.store.db.Rebind(query), args...); err != nil {
		return nil, r.store.translate(err, "select teams", teamHints)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	members, err := listMemberships(ctx, r.store.db, membershipTeamColumn, ids)
	if err != nil {
		return nil, r.store.translate(err, "select team members", teamHints)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(members[row.ID]))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	item, found, err := getTeam(ctx, r.store.db, teamID)
	if err != nil {
		return team.Team{}, false, r.store.translate(err, "get team by id", teamHints)
	}
	return item, found, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamModelFrom(item), "")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.store.db.ExecContext(ctx, r.store.db.Rebind(query), args...); err != nil {
		return team.Team{}, r.store.translate(err, "insert team", teamHints)
	}

	item.PlayerIDs = []string{}
	return item, nil
}

// Update overwrites every column and returns the team with its current roster.
func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.UpdateModel("teams", teamModelFrom(item), "id")
	if err != nil {
		return team.Team{}, fmt.Errorf("build update team query: %w", err)
	}

	var out team.Team
	err = r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
		if err != nil {
			return err
		}
		if err := requireAffected(res, "Team not found"); err != nil {
			return err
		}
		updated, _, err := getTeam(ctx, tx, item.ID)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return team.Team{}, r.store.translate(err, "update team", teamHints)
	}
	return out, nil
}

// Delete removes the team with its memberships and matches.
func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	return r.store.deleteByID(ctx, "teams", teamID, "Team not found")
}

func getTeam(ctx context.Context, q sqlx.ExtContext, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").Where(qb.Eq("id", teamID)).ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, q, &row, q.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, err
	}

	members, err := listMemberships(ctx, q, membershipTeamColumn, []string{teamID})
	if err != nil {
		return team.Team{}, false, err
	}
	return row.toDomain(members[teamID]), true, nil
}

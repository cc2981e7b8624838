package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/querybuilder"
)

const (
	membershipPlayerColumn = "player_id"
	membershipTeamColumn   = "team_id"
)

type membershipModel struct {
	PlayerID string `db:"player_id"`
	TeamID   string `db:"team_id"`
}

// listMemberships returns, for every id in ids, the ids on the other side of player_teams.
// keyColumn picks the side ids belong to.
func listMemberships(ctx context.Context, q sqlx.ExtContext, keyColumn string, ids []string) (map[string][]string, error) {
	out := make(map[string][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	valueColumn := membershipTeamColumn
	if keyColumn == membershipTeamColumn {
		valueColumn = membershipPlayerColumn
	}
	query, args, err := qb.Select(membershipPlayerColumn, membershipTeamColumn).
		From("player_teams").
		Where(qb.InStrings(keyColumn, ids)).
		OrderBy(keyColumn, valueColumn).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select memberships query: %w", err)
	}

	var rows []membershipModel
	if err := sqlx.SelectContext(ctx, q, &rows, q.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if keyColumn == membershipTeamColumn {
			out[row.TeamID] = append(out[row.TeamID], row.PlayerID)
			continue
		}
		out[row.PlayerID] = append(out[row.PlayerID], row.TeamID)
	}
	return out, nil
}

func insertMembership(ctx context.Context, tx *sqlx.Tx, playerID, teamID string) error {
	query, args, err := qb.InsertInto("player_teams").
		Columns(membershipPlayerColumn, membershipTeamColumn).
		Values(playerID, teamID).
		Suffix("ON CONFLICT (player_id, team_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert membership query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return err
	}
	return nil
}

func deleteMembershipsForPlayer(ctx context.Context, tx *sqlx.Tx, playerID string) error {
	query, args, err := qb.DeleteFrom("player_teams").
		Where(qb.Eq(membershipPlayerColumn, playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete memberships query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return err
	}
	return nil
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

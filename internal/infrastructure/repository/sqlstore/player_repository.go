package sqlstore

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/player"
	qb "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/querybuilder"
)

var playerHints = errorHints{
	conflict:    "Email already exists for another player.",
	referential: "Team does not exist.",
}

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

// List returns players ordered by last then first name. With a team filter only members of that
// team match, but each one still carries all of its memberships.
func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	var builder *qb.SelectBuilder
	if filter.TeamID != "" {
		builder = qb.Select("p.id", "p.first_name", "p.last_name", "p.email", "p.profile_picture_url").
			From("players p JOIN player_teams pt ON pt.player_id = p.id").
			Where(qb.Eq("pt.team_id", filter.TeamID)).
			OrderBy("p.last_name", "p.first_name", "p.id")
	} else {
		builder = qb.Select(playerColumns...).
			From("players").
			OrderBy("last_name", "first_name", "id")
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.store.db, &rows, r.store.db.Rebind(query), args...); err != nil {
		return nil, r.store.translate(err, "select players", playerHints)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	memberships, err := listMemberships(ctx, r.store.db, membershipPlayerColumn, ids)
	if err != nil {
		return nil, r.store.translate(err, "select player memberships", playerHints)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(memberships[row.ID]))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("players").Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.store.db.GetContext(ctx, &row, r.store.db.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, r.store.translate(err, "get player by id", playerHints)
	}

	memberships, err := listMemberships(ctx, r.store.db, membershipPlayerColumn, []string{playerID})
	if err != nil {
		return player.Player{}, false, r.store.translate(err, "select player memberships", playerHints)
	}
	return row.toDomain(memberships[playerID]), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player, initialTeamID string) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerModelFrom(item), "")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	err = r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return err
		}
		if initialTeamID == "" {
			return nil
		}
		return insertMembership(ctx, tx, item.ID, initialTeamID)
	})
	if err != nil {
		return player.Player{}, r.store.translate(err, "insert player", playerHints)
	}

	item.TeamIDs = []string{}
	if initialTeamID != "" {
		item.TeamIDs = []string{initialTeamID}
	}
	return item, nil
}

// ReplaceRoster updates the player row and swaps its whole membership set for teamIDs.
// The returned TeamIDs are sorted, as reads return them.
func (r *PlayerRepository) ReplaceRoster(ctx context.Context, item player.Player, teamIDs []string) (player.Player, error) {
	query, args, err := qb.UpdateModel("players", playerModelFrom(item), "id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build update player query: %w", err)
	}

	roster := player.NormalizeTeamIDs(teamIDs)
	slices.Sort(roster)
	err = r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
		if err != nil {
			return err
		}
		if err := requireAffected(res, "Player not found"); err != nil {
			return err
		}
		if err := deleteMembershipsForPlayer(ctx, tx, item.ID); err != nil {
			return err
		}
		for _, teamID := range roster {
			if err := insertMembership(ctx, tx, item.ID, teamID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return player.Player{}, r.store.translate(err, "replace player roster", playerHints)
	}

	item.TeamIDs = roster
	return item, nil
}

// Delete removes the player and its memberships; teams it captained lose their captain.
func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	return r.store.deleteByID(ctx, "players", playerID, "Player not found")
}

package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("p.id", "p.last_name").
		From("players p JOIN player_teams pt ON pt.player_id = p.id").
		Where(Eq("pt.team_id", "t1")).
		OrderBy("p.last_name", "p.id").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT p.id, p.last_name FROM players p JOIN player_teams pt ON pt.player_id = p.id WHERE pt.team_id = ? ORDER BY p.last_name, p.id", query)
	require.Equal(t, []any{"t1"}, args)

	_, _, err = Select().From("players").ToSQL()
	require.Error(t, err)
}

func TestSelectBuilder_InStrings(t *testing.T) {
	query, args, err := Select("player_id", "team_id").
		From("player_teams").
		Where(InStrings("team_id", []string{"t1", "t2"})).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT player_id, team_id FROM player_teams WHERE team_id IN (?, ?)", query)
	require.Equal(t, []any{"t1", "t2"}, args)

	query, args, err = Select("team_id").From("player_teams").Where(InStrings("team_id", nil)).ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT team_id FROM player_teams WHERE 1=0", query)
	require.Empty(t, args)
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("player_teams").
		Columns("player_id", "team_id").
		Values("p1", "t1").
		Suffix("ON CONFLICT (player_id, team_id) DO NOTHING").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO player_teams (player_id, team_id) VALUES (?, ?) ON CONFLICT (player_id, team_id) DO NOTHING", query)
	require.Equal(t, []any{"p1", "t1"}, args)

	_, _, err = InsertInto("player_teams").Columns("player_id", "team_id").Values("p1").ToSQL()
	require.Error(t, err)
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("matches").
		Set("status", "Live").
		Set("umpire1", nil).
		Where(Eq("id", "m1"), Eq("scorecard_id", "sc1")).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "UPDATE matches SET status = ?, umpire1 = ? WHERE id = ? AND scorecard_id = ?", query)
	require.Equal(t, []any{"Live", nil, "m1", "sc1"}, args)

	require.False(t, Update("matches").HasSets())
	_, _, err = Update("matches").Set("status", "Live").ToSQL()
	require.Error(t, err, "unconditioned update must be rejected")
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("leagues").Where(Eq("id", "l1")).ToSQL()
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM leagues WHERE id = ?", query)
	require.Equal(t, []any{"l1"}, args)

	_, _, err = DeleteFrom("leagues").ToSQL()
	require.Error(t, err)
}

type leagueRow struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Location *string `db:"location"`
	Note     string  `db:"-"`
	ignored  string
}

func TestInsertModel(t *testing.T) {
	query, args, err := InsertModel("leagues", leagueRow{ID: "l1", Name: "IPL", ignored: "x"}, "ON CONFLICT (id) DO NOTHING")
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO leagues (id, name, location) VALUES (?, ?, ?) ON CONFLICT (id) DO NOTHING", query)
	require.Len(t, args, 3)

	_, _, err = InsertModel("leagues", (*leagueRow)(nil), "")
	require.Error(t, err)
}

func TestUpdateModel(t *testing.T) {
	query, args, err := UpdateModel("leagues", leagueRow{ID: "l1", Name: "IPL"}, "id")
	require.NoError(t, err)
	require.Equal(t, "UPDATE leagues SET name = ?, location = ? WHERE id = ?", query)
	require.Equal(t, []any{"IPL", (*string)(nil), "l1"}, args)

	_, _, err = UpdateModel("leagues", leagueRow{ID: "l1"}, "league_id")
	require.Error(t, err)
}

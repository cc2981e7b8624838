package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatDBQueryForTrace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "   ", want: ""},
		{name: "whitespace", in: "SELECT id\n\t FROM leagues\n ORDER BY start_date DESC", want: "SELECT id FROM leagues ORDER BY start_date DESC"},
		{name: "sqlite in list", in: "SELECT player_id, team_id FROM player_teams WHERE team_id IN (?, ?, ?)", want: "SELECT player_id, team_id FROM player_teams WHERE team_id IN (...)"},
		{name: "postgres in list", in: "SELECT player_id FROM player_teams WHERE team_id IN ($1,$2)", want: "SELECT player_id FROM player_teams WHERE team_id IN (...)"},
		{name: "single bind kept", in: "SELECT id FROM matches WHERE id = $1", want: "SELECT id FROM matches WHERE id = $1"},
		{name: "insert values collapse", in: "INSERT INTO player_teams (player_id, team_id) VALUES ($1, $2)", want: "INSERT INTO player_teams (player_id, team_id) VALUES (...)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, formatDBQueryForTrace(tt.in))
		})
	}
}

func TestFormatDBQueryForTrace_Truncates(t *testing.T) {
	long := "SELECT " + strings.Repeat("c, ", 300) + "id FROM teams"
	got := formatDBQueryForTrace(long)
	require.Len(t, got, maxTracedQueryLength+3)
	require.True(t, strings.HasSuffix(got, "..."))
}

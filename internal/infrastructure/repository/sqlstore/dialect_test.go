package sqlstore

import (
	"context"
	"database/sql/driver"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestPrepareSQLiteDSN(t *testing.T) {
	t.Parallel()

	got := prepareSQLiteDSN("sqlite://file:cricket.db?cache=shared")
	path, rawQuery, ok := strings.Cut(got, "?")
	require.True(t, ok)
	require.Equal(t, "file:cricket.db", path)

	query, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	require.Equal(t, "shared", query.Get("cache"))
	require.Equal(t, "sqlite", query.Get("_time_format"))
	require.ElementsMatch(t, []string{"foreign_keys(1)", "busy_timeout(5000)"}, query["_pragma"])
}

func TestPrepareSQLiteDSN_KeepsCallerPragmas(t *testing.T) {
	t.Parallel()

	got := prepareSQLiteDSN("file:x.db?_pragma=busy_timeout(100)")
	query, err := url.ParseQuery(strings.SplitN(got, "?", 2)[1])
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"busy_timeout(100)", "foreign_keys(1)"}, query["_pragma"])
}

func TestClassifyPostgres(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		want       violation
		constraint string
	}{
		{"primary key", &pq.Error{Code: "23505", Constraint: "leagues_pkey"}, violationIDCollision, "leagues_pkey"},
		{"unique", &pq.Error{Code: "23505", Constraint: "leagues_name_key"}, violationUnique, "leagues_name_key"},
		{"foreign key", &pq.Error{Code: "23503", Constraint: "teams_league_id_fkey"}, violationForeignKey, "teams_league_id_fkey"},
		{"check", &pq.Error{Code: "23514", Constraint: "check_different_teams"}, violationCheck, "check_different_teams"},
		{"connection class", &pq.Error{Code: "08006"}, violationUnavailable, ""},
		{"admin shutdown", &pq.Error{Code: "57P01"}, violationUnavailable, ""},
		{"wrapped", fmt.Errorf("insert: %w", &pq.Error{Code: "23503"}), violationForeignKey, ""},
		{"bad conn", driver.ErrBadConn, violationUnavailable, ""},
		{"syntax", &pq.Error{Code: "42601"}, violationNone, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, constraint := classifyPostgres(tc.err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.constraint, constraint)
		})
	}
}

func TestSQLiteConstraintName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "check_different_teams", sqliteConstraintName("constraint failed: CHECK constraint failed: check_different_teams (275)"))
	require.Equal(t, "leagues.name", sqliteConstraintName("UNIQUE constraint failed: leagues.name"))
	require.Empty(t, sqliteConstraintName("disk I/O error"))
}

func TestTranslate_PostgresKinds(t *testing.T) {
	t.Parallel()

	store := New(nil, DriverPostgres, logging.NewNop())
	hints := errorHints{conflict: "League name already exists.", referential: "Match with ID m1 does not exist."}

	tests := []struct {
		name string
		err  error
		kind error
		hint string
	}{
		{"unique", &pq.Error{Code: "23505", Constraint: "leagues_name_key"}, failure.ErrConflict, "League name already exists."},
		{"pkey", &pq.Error{Code: "23505", Constraint: "leagues_pkey"}, failure.ErrIDCollision, "Identifier already in use"},
		{"fk", &pq.Error{Code: "23503"}, failure.ErrReferential, "Match with ID m1 does not exist."},
		{"different teams", &pq.Error{Code: "23514", Constraint: "check_different_teams"}, failure.ErrReferential, "Team A and Team B cannot be the same."},
		{"unavailable", &pq.Error{Code: "53300"}, failure.ErrStoreUnavailable, "Database is unavailable"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := store.translate(tc.err, "op", hints)
			require.ErrorIs(t, got, tc.kind)
			require.Equal(t, tc.hint, failure.Hint(got))
			require.NotContains(t, failure.Hint(got), "pq:")
		})
	}
}

func TestTranslate_PassesThroughClassifiedAndContextErrors(t *testing.T) {
	t.Parallel()

	store := New(nil, DriverSQLite, logging.NewNop())

	notFound := failure.NotFound("Player not found")
	require.Equal(t, notFound, store.translate(notFound, "op", errorHints{}))

	got := store.translate(context.Canceled, "select players", errorHints{})
	require.ErrorIs(t, got, context.Canceled)
	require.Nil(t, failure.KindOf(got))
}

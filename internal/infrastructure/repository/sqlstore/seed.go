package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/league"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/match"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/player"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/scorecard"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/team"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/user"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/id"
	qb "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/querybuilder"
)

const (
	defaultAdminUsername = "admin"
	sampleLeagueID       = "l1_sample_ipl"
	onConflictIDNothing  = "ON CONFLICT (id) DO NOTHING"
)

// SeedAdmin creates the default admin account unless a user named admin exists.
func (s *Store) SeedAdmin(ctx context.Context, ids id.Generator) error {
	var count int
	query, args, err := qb.Select("COUNT(1)").From("users").Where(qb.Eq("username", defaultAdminUsername)).ToSQL()
	if err != nil {
		return fmt.Errorf("build count admin query: %w", err)
	}
	if err := s.db.GetContext(ctx, &count, s.db.Rebind(query), args...); err != nil {
		return s.translate(err, "count admin user", errorHints{})
	}
	if count > 0 {
		return nil
	}

	adminID, err := ids.NewID()
	if err != nil {
		return fmt.Errorf("generate admin id: %w", err)
	}
	admin := userTableModel{
		ID:       adminID,
		Username: defaultAdminUsername,
		Password: "password",
		Email:    nullString("admin@example.com"),
		Role:     string(user.RoleAdmin),
	}
	query, args, err = qb.InsertModel("users", admin, "ON CONFLICT (username) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert admin query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return s.translate(err, "insert admin user", errorHints{})
	}

	s.logger.InfoContext(ctx, "default admin user created", "user_id", adminID)
	return nil
}

// SeedSampleData loads demo leagues, teams, players, matches and one scorecard in a single
// transaction. It does nothing once the sample league exists. Match times are relative to now.
func (s *Store) SeedSampleData(ctx context.Context, now time.Time) error {
	var seeded bool
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var count int
		query, args, err := qb.Select("COUNT(1)").From("leagues").Where(qb.Eq("id", sampleLeagueID)).ToSQL()
		if err != nil {
			return fmt.Errorf("build sample check query: %w", err)
		}
		if err := tx.GetContext(ctx, &count, tx.Rebind(query), args...); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, row := range sampleRows(now) {
			query, args, err := qb.InsertModel(row.table, row.model, row.suffix)
			if err != nil {
				return fmt.Errorf("build seed %s query: %w", row.table, err)
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return fmt.Errorf("seed %s: %w", row.table, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return s.translate(err, "seed sample data", errorHints{})
	}

	if seeded {
		s.logger.InfoContext(ctx, "sample data seeded")
	} else {
		s.logger.InfoContext(ctx, "sample data already present, skipping seed")
	}
	return nil
}

type seedRow struct {
	table  string
	model  any
	suffix string
}

func sampleRows(now time.Time) []seedRow {
	day := 24 * time.Hour
	date := func(v string) time.Time {
		t, _ := time.Parse(time.RFC3339, v)
		return t
	}

	leagues := []league.League{
		{ID: "l1_sample_ipl", Name: "TATA IPL 2024 (Sample)", Location: "India", StartDate: date("2024-03-22T00:00:00Z"), EndDate: date("2024-05-26T00:00:00Z")},
		{ID: "l2_sample_local", Name: "Local Club Championship (Sample)", Location: "Community Grounds", StartDate: date("2024-06-01T00:00:00Z"), EndDate: date("2024-07-30T00:00:00Z")},
	}
	players := []player.Player{
		{ID: "p_sample_rohit", FirstName: "Rohit", LastName: "Sharma (Sample)", Email: "rohit.sample@example.com", ProfilePictureURL: "https://via.placeholder.com/150"},
		{ID: "p_sample_virat", FirstName: "Virat", LastName: "Kohli (Sample)", Email: "virat.sample@example.com"},
		{ID: "p_sample_bumrah", FirstName: "Jasprit", LastName: "Bumrah (Sample)", Email: "jasprit.sample@example.com"},
		{ID: "p_sample_local1", FirstName: "Alex", LastName: "Local (Sample)", Email: "alex.local.sample@example.com"},
		{ID: "p_sample_local2", FirstName: "Sarah", LastName: "Club (Sample)", Email: "sarah.club.sample@example.com"},
	}
	teams := []team.Team{
		{ID: "t_sample_mi", Name: "Mumbai Champions (Sample)", LeagueID: "l1_sample_ipl", CaptainID: "p_sample_rohit", LogoURL: "https://via.placeholder.com/100?text=MI"},
		{ID: "t_sample_rcb", Name: "Bengaluru Royals (Sample)", LeagueID: "l1_sample_ipl", CaptainID: "p_sample_virat", LogoURL: "https://via.placeholder.com/100?text=RCB"},
		{ID: "t_sample_lions", Name: "Community Lions (Sample)", LeagueID: "l2_sample_local", CaptainID: "p_sample_local1"},
		{ID: "t_sample_tigers", Name: "Park Tigers (Sample)", LeagueID: "l2_sample_local", CaptainID: "p_sample_local2"},
	}
	memberships := []membershipModel{
		{PlayerID: "p_sample_rohit", TeamID: "t_sample_mi"},
		{PlayerID: "p_sample_bumrah", TeamID: "t_sample_mi"},
		{PlayerID: "p_sample_virat", TeamID: "t_sample_rcb"},
		{PlayerID: "p_sample_local1", TeamID: "t_sample_lions"},
		{PlayerID: "p_sample_local2", TeamID: "t_sample_tigers"},
		{PlayerID: "p_sample_local2", TeamID: "t_sample_lions"},
	}
	matches := []match.Match{
		{
			ID: "m_sample_1", LeagueID: "l1_sample_ipl", TeamAID: "t_sample_mi", TeamBID: "t_sample_rcb",
			DateTime: now.Add(-10 * day), Venue: "Wankhede Stadium (Sample)", Overs: 20, Status: match.StatusCompleted,
			Result: "Mumbai Champions (Sample) won by 10 runs", TossWonByTeamID: "t_sample_mi", ChoseTo: match.ChoseToBat,
			ScorecardID: "sc_m_sample_1",
		},
		{
			ID: "m_sample_2", LeagueID: "l1_sample_ipl", TeamAID: "t_sample_mi", TeamBID: "t_sample_rcb",
			DateTime: now.Add(7 * day), Venue: "Chinnaswamy Stadium (Sample)", Overs: 20, Status: match.StatusScheduled,
		},
		{
			ID: "m_sample_3", LeagueID: "l2_sample_local", TeamAID: "t_sample_lions", TeamBID: "t_sample_tigers",
			DateTime: now.Add(3 * day), Venue: "Local Park A (Sample)", Overs: 15, Status: match.StatusScheduled,
		},
	}
	scorecards := []scorecard.Scorecard{
		{
			ID:      "sc_m_sample_1",
			MatchID: "m_sample_1",
			Innings1: scorecard.Innings(`{"battingTeamId":"t_sample_mi","bowlingTeamId":"t_sample_rcb","score":180,"wickets":5,"oversPlayed":20,` +
				`"balls":[{"over":0,"ballInOver":1,"bowlerId":"p_sample_virat","batsmanId":"p_sample_rohit","runsScored":4,"extras":{}}]}`),
			Innings2: scorecard.Innings(`{"battingTeamId":"t_sample_rcb","bowlingTeamId":"t_sample_mi","score":170,"wickets":7,"oversPlayed":20,"balls":[]}`),
		},
	}

	rows := make([]seedRow, 0, len(leagues)+len(players)+len(teams)+len(memberships)+len(matches)+len(scorecards))
	for _, l := range leagues {
		rows = append(rows, seedRow{table: "leagues", model: leagueModelFrom(l), suffix: onConflictIDNothing})
	}
	for _, p := range players {
		rows = append(rows, seedRow{table: "players", model: playerModelFrom(p), suffix: onConflictIDNothing})
	}
	for _, t := range teams {
		rows = append(rows, seedRow{table: "teams", model: teamModelFrom(t), suffix: onConflictIDNothing})
	}
	for _, m := range memberships {
		rows = append(rows, seedRow{table: "player_teams", model: m, suffix: "ON CONFLICT (player_id, team_id) DO NOTHING"})
	}
	for _, m := range matches {
		rows = append(rows, seedRow{table: "matches", model: matchModelFrom(m), suffix: onConflictIDNothing})
	}
	for _, sc := range scorecards {
		rows = append(rows, seedRow{table: "scorecards", model: scorecardModelFrom(sc), suffix: onConflictIDNothing})
	}
	return rows
}

package httpapi

import (
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/league"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/match"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/player"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/scorecard"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/team"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/user"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type leagueRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	Location  string `json:"location"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

type teamRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	LeagueID  string `json:"leagueId" validate:"required"`
	CaptainID string `json:"captainId"`
	LogoURL   string `json:"logoUrl"`
}

type createPlayerRequest struct {
	FirstName         string `json:"firstName" validate:"required"`
	LastName          string `json:"lastName" validate:"required"`
	Email             string `json:"email"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	TeamID            string `json:"teamId"`
}

type updatePlayerRequest struct {
	ID                string   `json:"id"`
	FirstName         string   `json:"firstName" validate:"required"`
	LastName          string   `json:"lastName" validate:"required"`
	Email             string   `json:"email"`
	ProfilePictureURL string   `json:"profilePictureUrl"`
	TeamIDs           []string `json:"teamIds"`
}

type createMatchRequest struct {
	LeagueID string `json:"leagueId" validate:"required"`
	TeamAID  string `json:"teamAId" validate:"required"`
	TeamBID  string `json:"teamBId" validate:"required"`
	DateTime string `json:"dateTime" validate:"required"`
	Venue    string `json:"venue" validate:"required"`
	Overs    *int   `json:"overs" validate:"required"`
	Status   string `json:"status"`
}

// updateMatchRequest is sparse. Fields left out of the body stay untouched.
type updateMatchRequest struct {
	ID              string        `json:"id"`
	LeagueID        *string       `json:"leagueId"`
	TeamAID         *string       `json:"teamAId"`
	TeamBID         *string       `json:"teamBId"`
	DateTime        *string       `json:"dateTime"`
	Venue           *string       `json:"venue"`
	Overs           *int          `json:"overs"`
	Status          *string       `json:"status"`
	TossWonByTeamID nullableField `json:"tossWonByTeamId"`
	ChoseTo         nullableField `json:"choseTo"`
	Umpire1         nullableField `json:"umpire1"`
	Umpire2         nullableField `json:"umpire2"`
	Result          nullableField `json:"result"`
	ScorecardID     nullableField `json:"scorecardId"`
}

type upsertScorecardRequest struct {
	ID       string            `json:"id"`
	MatchID  string            `json:"matchId"`
	Innings1 scorecard.Innings `json:"innings1"`
	Innings2 scorecard.Innings `json:"innings2"`
}

// nullableField tells an explicit null apart from a missing key. Both null and "" clear the column.
type nullableField struct {
	Set   bool
	Value string
}

func (f *nullableField) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Value = ""
		return nil
	}
	var v string
	if err := sonic.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = v
	return nil
}

func (f nullableField) ptr() *string {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

type userDTO struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	Email             *string `json:"email"`
	Role              string  `json:"role"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

type teamSummaryDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LeagueID string `json:"leagueId"`
}

type leagueDTO struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Location  *string          `json:"location"`
	StartDate time.Time        `json:"startDate"`
	EndDate   time.Time        `json:"endDate"`
	Teams     []teamSummaryDTO `json:"teams"`
}

type teamDTO struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	LeagueID  string   `json:"leagueId"`
	CaptainID *string  `json:"captainId"`
	LogoURL   *string  `json:"logoUrl"`
	PlayerIDs []string `json:"playerIds"`
}

type playerDTO struct {
	ID                string   `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             *string  `json:"email"`
	ProfilePictureURL *string  `json:"profilePictureUrl"`
	TeamIDs           []string `json:"teamIds"`
}

type matchDTO struct {
	ID              string    `json:"id"`
	LeagueID        string    `json:"leagueId"`
	TeamAID         string    `json:"teamAId"`
	TeamBID         string    `json:"teamBId"`
	DateTime        time.Time `json:"dateTime"`
	Venue           string    `json:"venue"`
	Overs           int       `json:"overs"`
	Status          string    `json:"status"`
	TossWonByTeamID *string   `json:"tossWonByTeamId"`
	ChoseTo         *string   `json:"choseTo"`
	Umpire1         *string   `json:"umpire1"`
	Umpire2         *string   `json:"umpire2"`
	Result          *string   `json:"result"`
	ScorecardID     *string   `json:"scorecardId"`
}

type scorecardDTO struct {
	ID       string            `json:"id"`
	MatchID  string            `json:"matchId"`
	Innings1 scorecard.Innings `json:"innings1"`
	Innings2 scorecard.Innings `json:"innings2"`
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:                v.ID,
		Username:          v.Username,
		Email:             optional(v.Email),
		Role:              string(v.Role),
		ProfilePictureURL: optional(v.ProfilePictureURL),
	}
}

func leagueToDTO(v league.League) leagueDTO {
	teams := make([]teamSummaryDTO, 0, len(v.Teams))
	for _, t := range v.Teams {
		teams = append(teams, teamSummaryDTO{ID: t.ID, Name: t.Name, LeagueID: t.LeagueID})
	}
	return leagueDTO{
		ID:        v.ID,
		Name:      v.Name,
		Location:  optional(v.Location),
		StartDate: v.StartDate,
		EndDate:   v.EndDate,
		Teams:     teams,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		LeagueID:  v.LeagueID,
		CaptainID: optional(v.CaptainID),
		LogoURL:   optional(v.LogoURL),
		PlayerIDs: emptyIfNil(v.PlayerIDs),
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:                v.ID,
		FirstName:         v.FirstName,
		LastName:          v.LastName,
		Email:             optional(v.Email),
		ProfilePictureURL: optional(v.ProfilePictureURL),
		TeamIDs:           emptyIfNil(v.TeamIDs),
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:              v.ID,
		LeagueID:        v.LeagueID,
		TeamAID:         v.TeamAID,
		TeamBID:         v.TeamBID,
		DateTime:        v.DateTime,
		Venue:           v.Venue,
		Overs:           v.Overs,
		Status:          string(v.Status),
		TossWonByTeamID: optional(v.TossWonByTeamID),
		ChoseTo:         optional(string(v.ChoseTo)),
		Umpire1:         optional(v.Umpire1),
		Umpire2:         optional(v.Umpire2),
		Result:          optional(v.Result),
		ScorecardID:     optional(v.ScorecardID),
	}
}

func scorecardToDTO(v scorecard.Scorecard) scorecardDTO {
	return scorecardDTO{ID: v.ID, MatchID: v.MatchID, Innings1: v.Innings1, Innings2: v.Innings2}
}

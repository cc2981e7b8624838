package match

import (
	"strings"
	"time"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
)

// Patch is a sparse match update. Nil fields are left untouched.
//
// For the nullable columns (TossWonByTeamID, ChoseTo, Umpire1, Umpire2, Result, ScorecardID)
// a present empty string clears the stored value.
type Patch struct {
	LeagueID        *string
	TeamAID         *string
	TeamBID         *string
	DateTime        *time.Time
	Venue           *string
	Overs           *int
	Status          *Status
	TossWonByTeamID *string
	ChoseTo         *string
	Umpire1         *string
	Umpire2         *string
	Result          *string
	ScorecardID     *string
}

func (p Patch) IsEmpty() bool {
	return p.LeagueID == nil &&
		p.TeamAID == nil &&
		p.TeamBID == nil &&
		p.DateTime == nil &&
		p.Venue == nil &&
		p.Overs == nil &&
		p.Status == nil &&
		p.TossWonByTeamID == nil &&
		p.ChoseTo == nil &&
		p.Umpire1 == nil &&
		p.Umpire2 == nil &&
		p.Result == nil &&
		p.ScorecardID == nil
}

func (p Patch) Validate() error {
	if p.IsEmpty() {
		return failure.Validation("No update fields provided")
	}
	for _, required := range []*string{p.LeagueID, p.TeamAID, p.TeamBID} {
		if required != nil && strings.TrimSpace(*required) == "" {
			return failure.Validation("League and team ids cannot be empty")
		}
	}
	if p.TeamAID != nil && p.TeamBID != nil && *p.TeamAID == *p.TeamBID {
		return failure.Validation("Team A and Team B cannot be the same.")
	}
	if p.DateTime != nil && p.DateTime.IsZero() {
		return failure.Validation("Match dateTime cannot be empty")
	}
	if p.Overs != nil && *p.Overs < 0 {
		return failure.Validation("Overs cannot be negative")
	}
	if p.Status != nil {
		if err := validateStatus(*p.Status); err != nil {
			return err
		}
	}
	if p.ChoseTo != nil && *p.ChoseTo != "" {
		if err := validateChoice(TossChoice(*p.ChoseTo)); err != nil {
			return err
		}
	}

	return nil
}

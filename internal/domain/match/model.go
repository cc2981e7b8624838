package match

import (
	"strings"
	"time"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
)

// Status is the lifecycle label of a match. Any status may replace any other.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusLive      Status = "Live"
	StatusCompleted Status = "Completed"
	StatusAbandoned Status = "Abandoned"
	StatusPostponed Status = "Postponed"
)

var allStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusLive:      {},
	StatusCompleted: {},
	StatusAbandoned: {},
	StatusPostponed: {},
}

// TossChoice is what the toss winner elected to do first.
type TossChoice string

const (
	ChoseToBat  TossChoice = "Bat"
	ChoseToBowl TossChoice = "Bowl"
)

const DefaultOvers = 15

// Match is a game between two teams of one league.
type Match struct {
	ID              string
	LeagueID        string
	TeamAID         string
	TeamBID         string
	DateTime        time.Time
	Venue           string
	Overs           int
	Status          Status
	TossWonByTeamID string
	ChoseTo         TossChoice
	Umpire1         string
	Umpire2         string
	Result          string
	ScorecardID     string
}

// Filter narrows List. Empty fields match everything.
type Filter struct {
	LeagueID string
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.LeagueID) == "" ||
		strings.TrimSpace(m.TeamAID) == "" ||
		strings.TrimSpace(m.TeamBID) == "" ||
		m.DateTime.IsZero() ||
		strings.TrimSpace(m.Venue) == "" {
		return failure.Validation("Missing required fields for match")
	}
	if m.TeamAID == m.TeamBID {
		return failure.Validation("Team A and Team B cannot be the same.")
	}
	if m.Overs < 0 {
		return failure.Validation("Overs cannot be negative")
	}
	if err := validateStatus(m.Status); err != nil {
		return err
	}
	if m.ChoseTo != "" {
		if err := validateChoice(m.ChoseTo); err != nil {
			return err
		}
	}

	return nil
}

func validateStatus(s Status) error {
	if _, ok := allStatuses[s]; !ok {
		return failure.Newf(failure.ErrValidation, "Invalid match status: %s", s)
	}
	return nil
}

func validateChoice(c TossChoice) error {
	switch c {
	case ChoseToBat, ChoseToBowl:
		return nil
	default:
		return failure.Newf(failure.ErrValidation, "Invalid toss choice: %s", c)
	}
}

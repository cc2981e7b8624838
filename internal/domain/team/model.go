package team

import (
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
)

// Team is a roster-holding side inside one league.
type Team struct {
	ID        string
	Name      string
	LeagueID  string
	CaptainID string
	LogoURL   string
	PlayerIDs []string
}

// Filter narrows List. Empty fields match everything.
type Filter struct {
	LeagueID string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.LeagueID) == "" {
		return failure.Validation("Team name and league are required")
	}

	return nil
}

package league

import (
	"strings"
	"time"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
)

// League is a named competition with a date range. It owns teams and matches.
type League struct {
	ID        string
	Name      string
	Location  string
	StartDate time.Time
	EndDate   time.Time
	Teams     []TeamSummary
}

// TeamSummary is the slim team projection nested under a league.
type TeamSummary struct {
	ID       string
	Name     string
	LeagueID string
}

// Validate checks the fields required on create and whole-row update.
// Start and end dates are not ordered against each other.
func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return failure.Validation("Missing required fields: name, startDate, endDate")
	}
	if l.StartDate.IsZero() || l.EndDate.IsZero() {
		return failure.Validation("Missing required fields: name, startDate, endDate")
	}

	return nil
}

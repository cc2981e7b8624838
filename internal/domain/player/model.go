package player

import (
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
)

// Player is a person who may belong to any number of teams.
type Player struct {
	ID                string
	FirstName         string
	LastName          string
	Email             string
	ProfilePictureURL string
	TeamIDs           []string
}

// Filter narrows List. Empty fields match everything.
type Filter struct {
	TeamID string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return failure.Validation("First and last name are required")
	}

	return nil
}

// NormalizeTeamIDs drops empty and repeated ids, keeping first-seen order.
func NormalizeTeamIDs(teamIDs []string) []string {
	out := make([]string, 0, len(teamIDs))
	seen := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

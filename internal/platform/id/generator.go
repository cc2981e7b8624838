package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for new rows. It performs no existence check:
// uniqueness is enforced by the primary key at insert time.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator draws random (version 4) UUIDs rendered without dashes.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return strings.ReplaceAll(v.String(), "-", ""), nil
}

// Sequence replays fixed ids in order. Handy for deterministic fixtures.
type Sequence struct {
	ids  []string
	next int
}

func NewSequence(ids ...string) *Sequence {
	return &Sequence{ids: append([]string(nil), ids...)}
}

func (s *Sequence) NewID() (string, error) {
	if s.next >= len(s.ids) {
		return "", fmt.Errorf("id sequence exhausted after %d ids", len(s.ids))
	}
	v := s.ids[s.next]
	s.next++
	return v, nil
}

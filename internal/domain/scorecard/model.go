package scorecard

import (
	"bytes"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
)

var jsonNull = []byte("null")

// Innings is one innings record (batting side, score, ball events) kept as raw JSON.
// It is stored and returned verbatim and never interpreted.
type Innings []byte

func (i Innings) IsNull() bool {
	trimmed := bytes.TrimSpace(i)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
}

func (i Innings) MarshalJSON() ([]byte, error) {
	if i.IsNull() {
		return jsonNull, nil
	}
	return i, nil
}

func (i *Innings) UnmarshalJSON(data []byte) error {
	if Innings(data).IsNull() {
		*i = nil
		return nil
	}
	*i = append((*i)[:0], data...)
	return nil
}

// Scorecard records up to two innings for one match.
type Scorecard struct {
	ID       string
	MatchID  string
	Innings1 Innings
	Innings2 Innings
}

func (s Scorecard) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return failure.Validation("Scorecard ID is required")
	}
	if strings.TrimSpace(s.MatchID) == "" {
		return failure.Validation("Match ID is required for scorecard")
	}
	for _, innings := range []Innings{s.Innings1, s.Innings2} {
		if !innings.IsNull() && !sonic.Valid(innings) {
			return failure.Validation("Innings must be valid JSON")
		}
	}

	return nil
}

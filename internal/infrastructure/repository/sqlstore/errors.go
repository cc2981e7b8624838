package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
)

// errorHints holds the caller-facing messages for violations an operation can hit.
// uniqueAsReferential reports unique violations as Referential, for operations whose only
// unique column points at another row.
type errorHints struct {
	conflict            string
	referential         string
	uniqueAsReferential bool
}

const (
	defaultConflictHint    = "Resource already exists."
	defaultReferentialHint = "Referenced resource does not exist."
	differentTeamsHint     = "Team A and Team B cannot be the same."
	unavailableHint        = "Database is unavailable"

	checkDifferentTeams = "check_different_teams"
)

// translate maps a store error of op to a failure kind. Errors that already carry a kind pass
// through; unclassified errors are returned wrapped with op.
func (s *Store) translate(err error, op string, h errorHints) error {
	if err == nil {
		return nil
	}
	if failure.KindOf(err) != nil {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	kind, constraint := s.dialect.classify(err)
	switch kind {
	case violationIDCollision:
		return failure.Wrap(err, failure.ErrIDCollision, "Identifier already in use")
	case violationUnique:
		if h.uniqueAsReferential {
			return failure.Wrap(err, failure.ErrReferential, orDefault(h.conflict, defaultReferentialHint))
		}
		return failure.Wrap(err, failure.ErrConflict, orDefault(h.conflict, defaultConflictHint))
	case violationForeignKey:
		return failure.Wrap(err, failure.ErrReferential, orDefault(h.referential, defaultReferentialHint))
	case violationCheck:
		if constraint == checkDifferentTeams {
			return failure.Wrap(err, failure.ErrReferential, differentTeamsHint)
		}
		return failure.Wrap(err, failure.ErrReferential, orDefault(h.referential, defaultReferentialHint))
	case violationUnavailable:
		return failure.Wrap(err, failure.ErrStoreUnavailable, unavailableHint)
	}

	if errors.Is(err, sql.ErrConnDone) {
		return failure.Wrap(err, failure.ErrStoreUnavailable, unavailableHint)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

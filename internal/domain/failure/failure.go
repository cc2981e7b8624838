// Package failure defines the error kinds shared by repositories, services and transports.
//
// Every failure carries a kind (one of the sentinels below, matched with errors.Is) and a hint:
// a stable, caller-safe message. Underlying store errors are attached as secondary errors so they
// show up in logs without leaking into hints.
package failure

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrReferential      = errors.New("referential integrity violation")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrIDCollision      = errors.New("id collision")
	ErrUnauthorized     = errors.New("unauthorized")
)

var kinds = []error{
	ErrValidation,
	ErrNotFound,
	ErrConflict,
	ErrReferential,
	ErrStoreUnavailable,
	ErrIDCollision,
	ErrUnauthorized,
}

// New returns an error of the given kind whose hint is msg.
func New(kind error, msg string) error {
	return errors.WithHint(errors.Wrap(kind, msg), msg)
}

// Newf is New with formatting.
func Newf(kind error, format string, args ...any) error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap classifies cause as kind. The cause stays reachable for logging but not through Hint.
func Wrap(cause error, kind error, msg string) error {
	err := New(kind, msg)
	if cause != nil {
		err = errors.WithSecondaryError(err, cause)
	}
	return err
}

func Validation(msg string) error {
	return New(ErrValidation, msg)
}

func NotFound(msg string) error {
	return New(ErrNotFound, msg)
}

// KindOf returns the sentinel matching err, or nil for unclassified errors.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Hint returns the caller-safe message attached to err, if any.
func Hint(err error) string {
	if err == nil {
		return ""
	}
	return errors.FlattenHints(err)
}

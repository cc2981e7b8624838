package match

import (
	"errors"
	"testing"
	"time"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
)

func validMatch() Match {
	return Match{
		ID:       "m1",
		LeagueID: "l1",
		TeamAID:  "t1",
		TeamBID:  "t2",
		DateTime: time.Date(2024, 3, 22, 14, 0, 0, 0, time.UTC),
		Venue:    "Wankhede",
		Overs:    20,
		Status:   StatusScheduled,
	}
}

func TestMatchValidate(t *testing.T) {
	t.Parallel()

	if err := validMatch().Validate(); err != nil {
		t.Fatalf("expected valid match, got %v", err)
	}

	same := validMatch()
	same.TeamBID = same.TeamAID
	if err := same.Validate(); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error for same teams, got %v", err)
	}

	noVenue := validMatch()
	noVenue.Venue = " "
	if err := noVenue.Validate(); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error for missing venue, got %v", err)
	}

	badStatus := validMatch()
	badStatus.Status = "Finished"
	if err := badStatus.Validate(); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestPatchValidate(t *testing.T) {
	t.Parallel()

	if err := (Patch{}).Validate(); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected empty patch to be rejected, got %v", err)
	}
	if got := failure.Hint((Patch{}).Validate()); got != "No update fields provided" {
		t.Fatalf("unexpected hint: %q", got)
	}

	empty := ""
	if err := (Patch{Result: &empty, ChoseTo: &empty}).Validate(); err != nil {
		t.Fatalf("expected clearing nullable fields to be valid, got %v", err)
	}

	completed := StatusCompleted
	scheduled := StatusScheduled
	if err := (Patch{Status: &completed}).Validate(); err != nil {
		t.Fatalf("expected status change to be valid, got %v", err)
	}
	if err := (Patch{Status: &scheduled}).Validate(); err != nil {
		t.Fatalf("expected any status transition to be valid, got %v", err)
	}

	team := "t1"
	if err := (Patch{TeamAID: &team, TeamBID: &team}).Validate(); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected same-team patch to be rejected, got %v", err)
	}

	chose := "Field"
	if err := (Patch{ChoseTo: &chose}).Validate(); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected unknown toss choice to be rejected, got %v", err)
	}
}

func TestValidateStatus(t *testing.T) {
	for _, s := range []Status{StatusScheduled, StatusLive, StatusCompleted, StatusAbandoned, StatusPostponed} {
		if err := validateStatus(s); err != nil {
			t.Fatalf("expected %q to be valid, got %v", s, err)
		}
	}
	if err := validateStatus("scheduled"); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error for lowercase status, got %v", err)
	}
}

package id

import "testing"

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewUUIDGenerator()
	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		v, err := gen.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if len(v) != 32 {
			t.Fatalf("unexpected id length %d: %s", len(v), v)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id generated: %s", v)
		}
		seen[v] = struct{}{}
	}
}

func TestSequence_NewID(t *testing.T) {
	t.Parallel()

	seq := NewSequence("a", "b")
	for _, want := range []string{"a", "b"} {
		got, err := seq.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if got != want {
			t.Fatalf("unexpected id: got=%s want=%s", got, want)
		}
	}
	if _, err := seq.NewID(); err == nil {
		t.Fatalf("expected exhausted sequence error")
	}
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/xinci/pkg/xinci/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveRunUpserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run := store.Run{ID: "run-1", Root: "/corpus", StartedAt: time.Now(), Files: 2, TermsFound: 1}
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatal(err)
	}

	run.Files = 5
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun with same ID should upsert: %v", err)
	}
}

func TestAddTermsMergeLaw(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run := store.Run{ID: "run-1", Root: "/corpus", StartedAt: time.Now()}
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatal(err)
	}

	if err := s.AddTerms(ctx, "run-1", []store.Term{
		{Surface: "量子", Count: 4, Cohesion: 2.91, Freedom: 2.0},
		{Surface: "化学", Count: 7, Cohesion: 3.1, Freedom: 1.5},
	}); err != nil {
		t.Fatal(err)
	}

	// Higher count replaces, lower count leaves the row untouched.
	if err := s.AddTerms(ctx, "run-1", []store.Term{
		{Surface: "量子", Count: 9, Cohesion: 3.0, Freedom: 2.2},
		{Surface: "化学", Count: 2, Cohesion: 1.0, Freedom: 0.9},
	}); err != nil {
		t.Fatal(err)
	}

	terms, err := s.TopTerms(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != 2 {
		t.Fatalf("TopTerms = %+v, want 2 entries", terms)
	}
	if terms[0].Surface != "量子" || terms[0].Count != 9 {
		t.Errorf("terms[0] = %+v, want 量子:9", terms[0])
	}
	if terms[1].Surface != "化学" || terms[1].Count != 7 {
		t.Errorf("terms[1] = %+v, want 化学:7 (lower count must not downgrade)", terms[1])
	}
}

func TestTopTermsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveRun(ctx, store.Run{ID: "run-1", Root: "/corpus", StartedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	if err := s.AddTerms(ctx, "run-1", []store.Term{
		{Surface: "量子", Count: 4},
		{Surface: "化学", Count: 7},
		{Surface: "物理", Count: 1},
	}); err != nil {
		t.Fatal(err)
	}

	terms, err := s.TopTerms(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != 1 || terms[0].Surface != "化学" {
		t.Errorf("TopTerms(1) = %+v, want just 化学", terms)
	}
}

// Package store defines the optional discovery archive: a persistent record
// of runs and the terms they surfaced, so repeated passes over a growing
// corpus can be compared without re-reading output files.
package store

import (
	"context"
	"time"
)

// Store is the interface for persisting discovery runs.
type Store interface {
	Close() error

	// SaveRun records one discovery run's metadata.
	SaveRun(ctx context.Context, r Run) error

	// AddTerms folds a run's terms into the archive. Per surface form the
	// higher count wins, mirroring the batch merge law.
	AddTerms(ctx context.Context, runID string, terms []Term) error

	// TopTerms returns up to limit archived terms, count descending, ties
	// on surface form ascending.
	TopTerms(ctx context.Context, limit int) ([]Term, error)
}

// Run holds the metadata of one discovery run.
type Run struct {
	ID         string
	Root       string // input file or directory
	StartedAt  time.Time
	Files      int // files processed
	TermsFound int // unique terms discovered
}

// Term is one archived discovery.
type Term struct {
	Surface  string
	Count    int
	Cohesion float64
	Freedom  float64
}

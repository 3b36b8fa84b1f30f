// Package memstore is an in-memory implementation of store.Store for tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/xinci/pkg/xinci/store"
)

// Store keeps runs and terms in maps behind a mutex.
type Store struct {
	mu    sync.RWMutex
	runs  map[string]store.Run
	terms map[string]store.Term
}

// New creates an empty in-memory archive.
func New() *Store {
	return &Store{
		runs:  make(map[string]store.Run),
		terms: make(map[string]store.Term),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun implements store.Store.
func (s *Store) SaveRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = r
	return nil
}

// AddTerms implements store.Store: higher count wins per surface form.
func (s *Store) AddTerms(ctx context.Context, runID string, terms []store.Term) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range terms {
		if existing, ok := s.terms[t.Surface]; !ok || t.Count > existing.Count {
			s.terms[t.Surface] = t
		}
	}
	return nil
}

// TopTerms implements store.Store.
func (s *Store) TopTerms(ctx context.Context, limit int) ([]store.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Term, 0, len(s.terms))
	for _, t := range s.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Surface < out[j].Surface
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Runs returns the number of recorded runs, for tests.
func (s *Store) Runs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

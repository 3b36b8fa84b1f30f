// Package knownwords aggregates every term already present in existing
// lexicon JSON sources into a read-only lookup set. Loading is best-effort:
// unparsable files are skipped, but each skip is recorded in a load report
// instead of vanishing.
package knownwords

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Set is an immutable collection of known terms. Safe for concurrent
// readers once Load returns.
type Set struct {
	terms map[string]struct{}
}

// NewSet builds a set from explicit terms, mainly for tests and callers
// that already hold a vocabulary.
func NewSet(terms ...string) *Set {
	s := &Set{terms: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		if t != "" {
			s.terms[t] = struct{}{}
		}
	}
	return s
}

// Contains reports whether term is a known term.
func (s *Set) Contains(term string) bool {
	if s == nil {
		return false
	}
	_, ok := s.terms[term]
	return ok
}

// Len returns the number of known terms.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.terms)
}

// FileOutcome records one load attempt against a lexicon source.
type FileOutcome struct {
	Path    string
	Terms   int    // terms contributed by this file
	Skipped bool   // true when the file was ignored
	Reason  string // why it was skipped, empty otherwise
}

// Report collects the outcome of every lexicon source seen during Load.
type Report struct {
	Files []FileOutcome
}

// SkippedCount returns how many sources were skipped.
func (r Report) SkippedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Skipped {
			n++
		}
	}
	return n
}

// lexiconRecord is the minimal record shape of the shared lexicon schema.
// Older sources used "char" for the term field; both are accepted.
type lexiconRecord struct {
	Term string `json:"term"`
	Char string `json:"char"`
}

func (r lexiconRecord) term() string {
	if r.Term != "" {
		return r.Term
	}
	return r.Char
}

// Load walks root and aggregates known terms from every lexicon JSON file,
// skipping hidden directories, discovery-output directories, and files that
// are themselves discovery outputs. Parse failures skip the file and are
// noted in the report; only the walk itself can fail.
func Load(root string) (*Set, Report, error) {
	set := NewSet()
	var report Report

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || isOutputDir(name)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(name), ".json") || isOutputFile(name) {
			return nil
		}

		added, loadErr := loadFile(path, set)
		outcome := FileOutcome{Path: path, Terms: added}
		if loadErr != nil {
			outcome.Skipped = true
			outcome.Reason = loadErr.Error()
		}
		report.Files = append(report.Files, outcome)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			// A missing lexicon root simply means an empty known set.
			return set, report, nil
		}
		return nil, report, err
	}

	return set, report, nil
}

// isOutputDir reports whether a directory holds discovery outputs and must
// not feed back into the known set.
func isOutputDir(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "discovered") || strings.Contains(lower, "new_words")
}

// isOutputFile reports whether a JSON file is itself a discovery output.
func isOutputFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "discovered") || strings.Contains(lower, "new_words")
}

// loadFile parses one lexicon source. Three value shapes are accepted per
// key: a list of records carrying a term field, a list of bare strings, or
// a bare string.
func loadFile(path string, set *Set) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, err
	}

	added := 0
	add := func(term string) {
		if term == "" {
			return
		}
		if _, ok := set.terms[term]; !ok {
			set.terms[term] = struct{}{}
			added++
		}
	}

	for _, raw := range doc {
		var records []lexiconRecord
		if err := json.Unmarshal(raw, &records); err == nil {
			for _, rec := range records {
				add(rec.term())
			}
			continue
		}

		var strs []string
		if err := json.Unmarshal(raw, &strs); err == nil {
			for _, s := range strs {
				add(s)
			}
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			add(s)
		}
		// Unrecognized value shapes contribute nothing; the key-level
		// tolerance is what makes aggregation best-effort.
	}

	return added, nil
}

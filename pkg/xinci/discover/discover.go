// Package discover runs the candidate filter over a frequency table and
// ranks the survivors. This is the core of the engine: everything upstream
// produces counts, everything downstream formats output.
package discover

import (
	"math"
	"sort"

	"github.com/cognicore/xinci/pkg/xinci/config"
	"github.com/cognicore/xinci/pkg/xinci/entropy"
	"github.com/cognicore/xinci/pkg/xinci/knownwords"
	"github.com/cognicore/xinci/pkg/xinci/ngram"
	"github.com/cognicore/xinci/pkg/xinci/pmi"
	"github.com/cognicore/xinci/pkg/xinci/stopchars"
)

// Candidate is a surface form that survived every filter stage.
type Candidate struct {
	Term     string  // surface form
	Count    int     // raw occurrence count
	Cohesion float64 // min-split PMI, rounded to 2 decimals (+Inf if undefined)
	Freedom  float64 // min boundary entropy, rounded to 2 decimals
}

// Result is an ordered set of candidates for one corpus file, ranked by
// count descending.
type Result struct {
	Candidates []Candidate
}

// ByTerm returns the result's candidates keyed by surface form.
func (r Result) ByTerm() map[string]Candidate {
	out := make(map[string]Candidate, len(r.Candidates))
	for _, c := range r.Candidates {
		out[c.Term] = c
	}
	return out
}

// Extract applies the candidate filter to every n-gram of length
// [2, MaxWordLen] and returns the survivors ranked by count descending.
// Ties break on surface form ascending so runs are reproducible.
func Extract(table *ngram.Table, known *knownwords.Set, cfg config.Config) Result {
	var candidates []Candidate

	table.Each(func(gram string, count int) {
		if c, ok := evaluate(gram, count, table, known, cfg); ok {
			candidates = append(candidates, c)
		}
	})

	sortCandidates(candidates)
	return Result{Candidates: candidates}
}

// sortCandidates orders by count descending, then surface form ascending.
func sortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Count != candidates[j].Count {
			return candidates[i].Count > candidates[j].Count
		}
		return candidates[i].Term < candidates[j].Term
	})
}

// evaluate runs the filter stages in order; the first failing stage rejects.
func evaluate(gram string, count int, table *ngram.Table, known *knownwords.Set, cfg config.Config) (Candidate, bool) {
	runes := []rune(gram)
	if len(runes) < 2 || len(runes) > cfg.MaxWordLen {
		return Candidate{}, false
	}

	// 1. frequency floor
	if count < cfg.MinCount {
		return Candidate{}, false
	}

	// 2. already-known terms are not new
	if known.Contains(gram) {
		return Candidate{}, false
	}

	// 3. function characters cannot edge a real term
	if stopchars.Contains(runes[0]) || stopchars.Contains(runes[len(runes)-1]) {
		return Candidate{}, false
	}

	// 4. known word wearing a particle is not a new term
	if isRedundantComposition(runes, known) {
		return Candidate{}, false
	}

	// 5. internal cohesion
	cohesion := pmi.Cohesion(gram, table)
	if cohesion < cfg.MinPMI {
		return Candidate{}, false
	}

	// 6. contextual freedom
	freedom := entropy.Freedom(gram, table)
	if freedom < cfg.MinEntropy {
		return Candidate{}, false
	}

	return Candidate{
		Term:     gram,
		Count:    count,
		Cohesion: round2(cohesion),
		Freedom:  round2(freedom),
	}, true
}

// isRedundantComposition reports whether any split of the word decomposes
// into a known term plus a boundary stopword, in either order.
func isRedundantComposition(runes []rune, known *knownwords.Set) bool {
	for k := 1; k < len(runes); k++ {
		part1 := string(runes[:k])
		part2 := string(runes[k:])
		if known.Contains(part1) && stopchars.ContainsString(part2) {
			return true
		}
		if known.Contains(part2) && stopchars.ContainsString(part1) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*100) / 100
}

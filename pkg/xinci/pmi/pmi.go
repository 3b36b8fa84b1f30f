// Package pmi computes the internal cohesion of a candidate term as the
// minimum pointwise mutual information across all of its split points. The
// weakest internal bond governs: a real word must be cohesive at every
// possible split.
package pmi

import (
	"math"

	"github.com/cognicore/xinci/pkg/xinci/ngram"
)

// Cohesion returns the minimum PMI over all split points of w that have
// both parts present in the table:
//
//	PMI(w, k) = log2( P(w) / (P(w[:k]) * P(w[k:])) )
//
// where P(x) = count(x) / totalChars. If no split point ever has both parts
// present, the score is +Inf and the candidate passes any cohesion
// threshold. That admits atomic, previously-unseen tokens; callers wanting
// different semantics must decide upstream.
func Cohesion(w string, table *ngram.Table) float64 {
	runes := []rune(w)
	total := float64(table.TotalChars())
	if total == 0 || len(runes) < 2 {
		return math.Inf(1)
	}

	pWord := float64(table.Count(w)) / total
	minPMI := math.Inf(1)

	for k := 1; k < len(runes); k++ {
		c1 := table.Count(string(runes[:k]))
		c2 := table.Count(string(runes[k:]))
		if c1 == 0 || c2 == 0 {
			continue
		}
		p1 := float64(c1) / total
		p2 := float64(c2) / total
		score := math.Log2(pWord / (p1 * p2))
		if score < minPMI {
			minPMI = score
		}
	}

	return minPMI
}

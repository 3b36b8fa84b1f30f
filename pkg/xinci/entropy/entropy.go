// Package entropy computes boundary entropy, the contextual freedom of a
// candidate term. A term glued to a fixed neighbor on either side cannot
// vary its context and is treated as non-independent.
package entropy

import (
	"math"

	"github.com/cognicore/xinci/pkg/xinci/ngram"
)

// Shannon returns the Shannon entropy in bits of a count distribution.
// An empty or zero-total distribution has entropy 0.
func Shannon(counts []int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}

	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// Freedom returns the candidate's freedom score: the minimum of its left
// and right boundary entropies over the table's neighbor distributions.
func Freedom(w string, table *ngram.Table) float64 {
	right := Shannon(table.RightNeighborCounts(w))
	left := Shannon(table.LeftNeighborCounts(w))
	return math.Min(right, left)
}

// Package ngram builds the per-file frequency table the scorers work from.
// The table is constructed once per corpus file and never mutated after
// Build, so it can be read from any number of goroutines.
package ngram

// Table holds occurrence counts for every contiguous character sequence of
// length 1..maxWordLen+1 inside sentence-bounded spans, plus the neighbor
// count indexes boundary entropy needs.
type Table struct {
	counts map[string]int

	// rightNeighbors[p] lists the counts of every n-gram extending p by one
	// character on the right; leftNeighbors[s] the same on the left.
	rightNeighbors map[string][]int
	leftNeighbors  map[string][]int

	totalChars int
	maxWordLen int
}

// Build counts every substring of length 1..maxWordLen+1 across sentences.
// The extra window length exists only to give maxWordLen-sized candidates
// their boundary neighbor distributions.
func Build(sentences []string, maxWordLen int) *Table {
	t := &Table{
		counts:         make(map[string]int),
		rightNeighbors: make(map[string][]int),
		leftNeighbors:  make(map[string][]int),
		maxWordLen:     maxWordLen,
	}

	for _, sent := range sentences {
		runes := []rune(sent)
		t.totalChars += len(runes)
		for n := 1; n <= maxWordLen+1; n++ {
			for i := 0; i+n <= len(runes); i++ {
				t.counts[string(runes[i:i+n])]++
			}
		}
	}

	for gram, count := range t.counts {
		runes := []rune(gram)
		if len(runes) < 2 {
			continue
		}
		prefix := string(runes[:len(runes)-1])
		suffix := string(runes[1:])
		t.rightNeighbors[prefix] = append(t.rightNeighbors[prefix], count)
		t.leftNeighbors[suffix] = append(t.leftNeighbors[suffix], count)
	}

	return t
}

// Count returns the occurrence count of gram, zero if absent.
func (t *Table) Count(gram string) int {
	return t.counts[gram]
}

// TotalChars returns the total ideograph count across all sentences, the
// normalizer for all probability estimates.
func (t *Table) TotalChars() int {
	return t.totalChars
}

// MaxWordLen returns the maximum candidate length the table was built for.
func (t *Table) MaxWordLen() int {
	return t.maxWordLen
}

// RightNeighborCounts returns the counts of the n-grams extending gram by
// one character on the right. The returned slice must not be modified.
func (t *Table) RightNeighborCounts(gram string) []int {
	return t.rightNeighbors[gram]
}

// LeftNeighborCounts returns the counts of the n-grams extending gram by
// one character on the left. The returned slice must not be modified.
func (t *Table) LeftNeighborCounts(gram string) []int {
	return t.leftNeighbors[gram]
}

// Each calls fn for every counted n-gram. Iteration order is unspecified.
func (t *Table) Each(fn func(gram string, count int)) {
	for gram, count := range t.counts {
		fn(gram, count)
	}
}

package ngram

import (
	"reflect"
	"sort"
	"testing"
)

func TestBuildCounts(t *testing.T) {
	table := Build([]string{"人工人工"}, 2)

	tests := []struct {
		gram string
		want int
	}{
		{"人", 2},
		{"工", 2},
		{"人工", 2},
		{"工人", 1},
		{"人工人", 1},
		{"工人工", 1},
		{"智能", 0},
	}
	for _, tt := range tests {
		if got := table.Count(tt.gram); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.gram, got, tt.want)
		}
	}

	if table.TotalChars() != 4 {
		t.Errorf("TotalChars = %d, want 4", table.TotalChars())
	}
	if table.MaxWordLen() != 2 {
		t.Errorf("MaxWordLen = %d, want 2", table.MaxWordLen())
	}
}

func TestBuildWindowLengthCoversEntropy(t *testing.T) {
	// maxWordLen+1 windows exist so maxWordLen-sized candidates still get
	// neighbor distributions.
	table := Build([]string{"人工智能技"}, 4)

	if table.Count("人工智能技") != 1 {
		t.Errorf("Count(5-gram) = %d, want 1", table.Count("人工智能技"))
	}
	if got := table.RightNeighborCounts("人工智能"); len(got) != 1 || got[0] != 1 {
		t.Errorf("RightNeighborCounts(人工智能) = %v, want [1]", got)
	}
	if got := table.LeftNeighborCounts("工智能技"); len(got) != 1 || got[0] != 1 {
		t.Errorf("LeftNeighborCounts(工智能技) = %v, want [1]", got)
	}
}

func TestNeighborIndexes(t *testing.T) {
	table := Build([]string{"人工人工"}, 2)

	// Right extensions of 人工: only 人工人.
	if got := table.RightNeighborCounts("人工"); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("RightNeighborCounts(人工) = %v, want [1]", got)
	}
	// Left extensions of 人工: only 工人工.
	if got := table.LeftNeighborCounts("人工"); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("LeftNeighborCounts(人工) = %v, want [1]", got)
	}
	// Absent gram has no neighbors.
	if got := table.RightNeighborCounts("智能"); got != nil {
		t.Errorf("RightNeighborCounts(智能) = %v, want nil", got)
	}
}

func TestNeighborVariety(t *testing.T) {
	// 量子 extends right into 计, 通, 物 across sentences.
	table := Build([]string{"量子计", "量子通", "量子物"}, 2)

	got := table.RightNeighborCounts("量子")
	sort.Ints(got)
	if !reflect.DeepEqual(got, []int{1, 1, 1}) {
		t.Errorf("RightNeighborCounts(量子) = %v, want [1 1 1]", got)
	}
}

func TestBuildSentencesAreIsolated(t *testing.T) {
	// N-grams never span sentence boundaries.
	table := Build([]string{"人工", "智能"}, 2)

	if got := table.Count("工智"); got != 0 {
		t.Errorf("Count(工智) = %d, want 0 (cross-sentence gram)", got)
	}
	if table.TotalChars() != 4 {
		t.Errorf("TotalChars = %d, want 4", table.TotalChars())
	}
}

func TestEachVisitsEveryGram(t *testing.T) {
	table := Build([]string{"人工"}, 2)

	seen := make(map[string]int)
	table.Each(func(gram string, count int) {
		seen[gram] = count
	})

	want := map[string]int{"人": 1, "工": 1, "人工": 1}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("Each visited %v, want %v", seen, want)
	}
}

package pmi

import (
	"math"
	"testing"

	"github.com/cognicore/xinci/pkg/xinci/ngram"
)

func TestCohesionSimple(t *testing.T) {
	// In 人工人工: count(人工)=2, count(人)=count(工)=2, total=4.
	// PMI = log2( (2/4) / ((2/4)*(2/4)) ) = log2(2) = 1.
	table := ngram.Build([]string{"人工人工"}, 2)

	got := Cohesion("人工", table)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Cohesion(人工) = %f, want 1.0", got)
	}
}

func TestCohesionTakesMinimumSplit(t *testing.T) {
	// 量子计算 appears twice; every split has both parts in the table, and
	// the weakest split governs.
	sentences := []string{"量子计算量子计算"}
	table := ngram.Build(sentences, 4)

	got := Cohesion("量子计算", table)
	if math.IsInf(got, 1) {
		t.Fatal("Cohesion should be defined when splits are present")
	}

	// Recompute the expected minimum by hand.
	total := float64(table.TotalChars())
	pWord := float64(table.Count("量子计算")) / total
	want := math.Inf(1)
	parts := [][2]string{
		{"量", "子计算"},
		{"量子", "计算"},
		{"量子计", "算"},
	}
	for _, p := range parts {
		p1 := float64(table.Count(p[0])) / total
		p2 := float64(table.Count(p[1])) / total
		if v := math.Log2(pWord / (p1 * p2)); v < want {
			want = v
		}
	}

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Cohesion(量子计算) = %f, want %f", got, want)
	}
}

func TestCohesionUndefinedIsPositiveInfinity(t *testing.T) {
	// A word whose parts never occur in the corpus has no valid split;
	// its cohesion stays maximal and passes any threshold. Preserved
	// deliberately: it admits atomic, previously-unseen tokens.
	table := ngram.Build([]string{"人工智能"}, 4)

	got := Cohesion("量子", table)
	if !math.IsInf(got, 1) {
		t.Errorf("Cohesion(absent word) = %f, want +Inf", got)
	}
}

func TestCohesionEmptyTable(t *testing.T) {
	table := ngram.Build(nil, 4)

	if got := Cohesion("人工", table); !math.IsInf(got, 1) {
		t.Errorf("Cohesion on empty table = %f, want +Inf", got)
	}
}

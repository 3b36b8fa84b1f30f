package discover

// Merge folds src into dst, keeping whichever candidate has the higher
// count per surface form. Strictly greater replaces, so the operation is
// commutative and associative and safe to use as the reduce step of a
// parallel per-file run.
func Merge(dst map[string]Candidate, src map[string]Candidate) {
	for term, c := range src {
		if existing, ok := dst[term]; !ok || c.Count > existing.Count {
			dst[term] = c
		}
	}
}

// Ranked returns the aggregate's candidates in ranked order: count
// descending, surface form ascending on ties.
func Ranked(aggregate map[string]Candidate) Result {
	candidates := make([]Candidate, 0, len(aggregate))
	for _, c := range aggregate {
		candidates = append(candidates, c)
	}

	r := Result{Candidates: candidates}
	sortCandidates(r.Candidates)
	return r
}

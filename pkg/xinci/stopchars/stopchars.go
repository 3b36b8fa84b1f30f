// Package stopchars holds the fixed set of function characters that may not
// appear at either edge of a discovered term. A candidate like "的危害" is a
// known word wearing a particle, not a new term.
package stopchars

// boundary is the set of CJK function characters (particles, copulas,
// aspect markers) disallowed at term edges.
const boundary = "的了和是在有而及与或之为其于以到等说着也就都吧呢吗啊呀让把给被"

var set = func() map[rune]struct{} {
	m := make(map[rune]struct{})
	for _, r := range boundary {
		m[r] = struct{}{}
	}
	return m
}()

// Contains reports whether r is a boundary stopword character.
func Contains(r rune) bool {
	_, ok := set[r]
	return ok
}

// ContainsString reports whether s is exactly one boundary stopword
// character. Multi-character strings are never stopwords.
func ContainsString(s string) bool {
	runes := []rune(s)
	if len(runes) != 1 {
		return false
	}
	return Contains(runes[0])
}

// All returns every boundary stopword character.
func All() []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	return out
}

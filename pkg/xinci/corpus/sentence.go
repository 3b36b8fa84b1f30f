package corpus

// CJK unified ideograph range used for sentence segmentation. Anything
// outside it is a sentence boundary.
const (
	ideographMin = '一' // U+4E00
	ideographMax = '龥' // U+9FA5
)

func isIdeograph(r rune) bool {
	return r >= ideographMin && r <= ideographMax
}

// Sentences splits text into maximal runs of CJK ideographic characters.
// Runs shorter than two characters carry no n-gram signal and are dropped.
func Sentences(text string) []string {
	var sentences []string
	var current []rune

	flush := func() {
		if len(current) >= 2 {
			sentences = append(sentences, string(current))
		}
		current = current[:0]
	}

	for _, r := range text {
		if isIdeograph(r) {
			current = append(current, r)
		} else {
			flush()
		}
	}
	flush()

	return sentences
}

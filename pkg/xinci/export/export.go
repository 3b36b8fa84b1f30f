// Package export serializes discovery results into the shared lexicon
// schema (phonetic key → term records, gloss always empty) and into a flat
// ranked term list. Glosses belong to the translation tools downstream,
// never to this engine.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mozillazg/go-pinyin"

	"github.com/cognicore/xinci/pkg/xinci/discover"
)

// Record is one entry of the shared lexicon schema.
type Record struct {
	Term  string `json:"term"`
	Gloss string `json:"gloss"`
}

var pinyinArgs = pinyin.NewArgs()

// PhoneticKey transliterates a surface form into its phonetic key: the
// toneless pinyin of each character, concatenated. Characters with no
// reading contribute nothing; a fully unreadable term yields "".
func PhoneticKey(term string) string {
	return strings.Join(pinyin.LazyPinyin(term, pinyinArgs), "")
}

// Lexicon builds the phonetic-keyed mapping for a result. Terms whose
// phonetic key cannot be derived are dropped, matching the behavior of the
// lexicon tools this output feeds.
func Lexicon(result discover.Result) map[string][]Record {
	out := make(map[string][]Record)
	for _, c := range result.Candidates {
		key := PhoneticKey(c.Term)
		if key == "" {
			continue
		}
		out[key] = append(out[key], Record{Term: c.Term, Gloss: ""})
	}
	return out
}

// LexiconJSON renders the lexicon mapping as indented JSON with keys in
// sorted order (Go's map marshaling sorts keys).
func LexiconJSON(result discover.Result) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Lexicon(result)); err != nil {
		return nil, fmt.Errorf("encode lexicon: %w", err)
	}
	return buf.Bytes(), nil
}

// TermList renders one surface form per line in ranked order, not
// alphabetical: downstream review tools want the most frequent first.
func TermList(result discover.Result) []byte {
	var buf bytes.Buffer
	for _, c := range result.Candidates {
		buf.WriteString(c.Term)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteFiles writes both representations for a result under the given
// paths. The first failure wins; the caller decides whether that excludes
// the file from an aggregate.
func WriteFiles(result discover.Result, jsonPath, txtPath string) error {
	data, err := LexiconJSON(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}
	if err := os.WriteFile(txtPath, TermList(result), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", txtPath, err)
	}
	return nil
}

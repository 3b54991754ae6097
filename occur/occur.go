// Package occur locates keyword and phrase occurrences in Arabic text.
//
// Matching is tolerant of Arabic orthographic variants, tashkeel, tatweel
// and letter case: both the content and the term are split into word
// tokens on whitespace and punctuation, each token is normalized with
// normalize.Normalize, and the term's token sequence is matched
// positionally against the content's. A single-word term therefore only
// matches whole words: "كتاب" does not match inside "الكتاب".
//
// Matches are leftmost-first and never overlap. Every Occurrence carries
// byte offsets into the original content, and content[o.Start:o.End] ==
// o.Text holds for every result.
//
// FindAll, Count and Contains tokenize the content on each call. Callers
// testing many terms against the same content should build an Index once.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Attached clitics are part of the word: "وكتاب" does not match "كتاب".
//   - Hyphenated compounds are one token, so "SEO" does not match inside
//     "SEO-friendly".
package occur

import (
	"fmt"

	"github.com/civanmustafa/Sembrand-editor/normalize"
	"github.com/civanmustafa/Sembrand-editor/tokenizer"
)

// maxInputBytes is the maximum content size searched.
// Larger inputs have no occurrences.
const maxInputBytes = 1 << 20 // 1 MiB

// Occurrence is one match of a term in the original content.
type Occurrence struct {
	Start int    `json:"start"` // Byte offset (inclusive)
	End   int    `json:"end"`   // Byte offset (exclusive)
	Text  string `json:"text"`  // content[Start:End]
}

// String returns a debug representation, e.g. "كتاب"[4:12].
func (o Occurrence) String() string {
	return fmt.Sprintf("%q[%d:%d]", o.Text, o.Start, o.End)
}

// FindAll returns every non-overlapping occurrence of term in content, in
// order. Returns nil when term has no word tokens.
func FindAll(content, term string) []Occurrence {
	return NewIndex(content).FindAll(term)
}

// Count returns len(FindAll(content, term)).
func Count(content, term string) int {
	return NewIndex(content).Count(term)
}

// Contains reports whether term occurs in content.
func Contains(content, term string) bool {
	return NewIndex(content).Contains(term)
}

// key is a normalized word token with its span in the source string.
type key struct {
	norm       string
	start, end int
}

// keys tokenizes s into normalized word and number tokens.
// Tokens that normalize to nothing (a lone tatweel) are dropped.
func keys(s string) []key {
	toks := tokenizer.WordTokens(s)
	out := make([]key, 0, len(toks)/2+1)
	for _, t := range toks {
		if t.Type != tokenizer.Word && t.Type != tokenizer.Number {
			continue
		}
		n := normalize.Normalize(t.Text)
		if n == "" {
			continue
		}
		out = append(out, key{norm: n, start: t.Start, end: t.End})
	}
	return out
}

// Terms normalizes term into its token sequence, the form Index matches.
func Terms(term string) []string {
	ks := keys(term)
	if len(ks) == 0 {
		return nil
	}
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.norm
	}
	return out
}

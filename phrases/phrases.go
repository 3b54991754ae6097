// Package phrases finds word sequences repeated within an Arabic document.
//
// Content is reduced to a list of normalized Arabic words: each word token
// is passed through normalize.NormalizeForAnalysis, so Latin words,
// punctuation and ASCII digits drop out and letter variants, tashkeel and
// case are folded. Every contiguous window of n words, for n from 2 to 8,
// is counted; windows seen at least twice are reported.
//
// A reported Phrase is keyed by its normalized form but displays the
// surface text of its first occurrence, taken verbatim from the content.
// Spans lists every occurrence, so surface variants ("تحسين SEO المواقع"
// for "تحسين المواقع") can be highlighted where they stand.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Windows cross sentence, paragraph and heading boundaries.
//   - Overlapping windows are all counted: "جدا جدا جدا" repeats "جدا جدا".
package phrases

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/civanmustafa/Sembrand-editor/normalize"
	"github.com/civanmustafa/Sembrand-editor/tokenizer"
)

// maxInputBytes is the maximum content size analyzed.
// Larger inputs yield an empty Result.
const maxInputBytes = 1 << 20 // 1 MiB

const (
	defaultMinN     = 2
	defaultMaxN     = 8
	defaultMinCount = 2
	maxWindow       = 16 // hard cap on Options.MaxN
)

// Phrase is one repeated word sequence.
type Phrase struct {
	Text  string `json:"text"`  // Surface text of the first occurrence
	Key   string `json:"key"`   // Normalized words joined by single spaces
	N     int    `json:"n"`     // Number of words
	Count int    `json:"count"` // Occurrences, overlapping windows included
	Start int    `json:"start"` // Byte offset of the first occurrence (inclusive)
	End   int    `json:"end"`   // Byte offset of the first occurrence (exclusive)
	Spans []Span `json:"spans"` // Every occurrence in content order
}

// Span is one occurrence of a Phrase: content[Start:End].
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// String returns a debug representation, e.g. Phrase2("في الواقع")x3.
func (p Phrase) String() string {
	return fmt.Sprintf("Phrase%d(%q)x%d", p.N, p.Text, p.Count)
}

// Stats aggregates a Result.
type Stats struct {
	TotalWords       int `json:"total_words"`       // Words after normalization
	UniqueWords      int `json:"unique_words"`      // Distinct normalized words
	RepeatedPhrases  int `json:"repeated_phrases"`  // Reported phrases across all lengths
	TotalRepetitions int `json:"total_repetitions"` // Sum of Count-1 over reported phrases
}

// Result holds the reported phrases grouped by length.
// Groups has an entry, possibly empty, for every length in the requested range.
type Result struct {
	Groups map[int][]Phrase `json:"groups"`
	Stats  Stats            `json:"stats"`
}

// All returns every reported phrase, longest first, keeping each group's order.
func (r Result) All() []Phrase {
	ns := make([]int, 0, len(r.Groups))
	for n := range r.Groups {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	slices.Reverse(ns)

	var out []Phrase
	for _, n := range ns {
		out = append(out, r.Groups[n]...)
	}
	return out
}

// Options tunes extraction. Zero fields take their defaults.
type Options struct {
	MinN     int // Shortest window, default 2
	MaxN     int // Longest window, default 8, capped at 16
	MinCount int // Minimum occurrences to report, default 2
}

func (o Options) withDefaults() Options {
	if o.MinN <= 0 {
		o.MinN = defaultMinN
	}
	if o.MaxN <= 0 {
		o.MaxN = defaultMaxN
	}
	o.MaxN = min(o.MaxN, maxWindow)
	if o.MaxN < o.MinN {
		o.MaxN = o.MinN
	}
	if o.MinCount <= 0 {
		o.MinCount = defaultMinCount
	}
	return o
}

// Extract reports word sequences of 2 to 8 words occurring at least twice.
func Extract(content string) Result {
	return ExtractWith(content, Options{})
}

// ExtractWith is Extract with explicit window bounds and count threshold.
func ExtractWith(content string, opts Options) Result {
	opts = opts.withDefaults()
	res := Result{Groups: make(map[int][]Phrase, opts.MaxN-opts.MinN+1)}
	for n := opts.MinN; n <= opts.MaxN; n++ {
		res.Groups[n] = []Phrase{}
	}
	if content == "" || len(content) > maxInputBytes {
		return res
	}

	words := analysisWords(content)
	res.Stats.TotalWords = len(words)
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w.key] = struct{}{}
	}
	res.Stats.UniqueWords = len(unique)

	for n := opts.MinN; n <= opts.MaxN && n <= len(words); n++ {
		group := countWindows(content, words, n, opts.MinCount)
		res.Groups[n] = group
		for _, p := range group {
			res.Stats.RepeatedPhrases++
			res.Stats.TotalRepetitions += p.Count - 1
		}
	}
	return res
}

// word is one normalized analysis word with the span of the token it came from.
type word struct {
	key        string
	start, end int
}

// analysisWords tokenizes content into normalized Arabic words.
// A token that normalizes to several words ("ما-قبل") contributes each of
// them with the token's span; a token that normalizes to nothing is dropped.
func analysisWords(content string) []word {
	toks := tokenizer.WordTokens(content)
	words := make([]word, 0, len(toks)/2+1)
	for _, t := range toks {
		if t.Type != tokenizer.Word && t.Type != tokenizer.Number {
			continue
		}
		for _, k := range strings.Fields(normalize.NormalizeForAnalysis(t.Text)) {
			words = append(words, word{key: k, start: t.Start, end: t.End})
		}
	}
	return words
}

// countWindows counts every n-word window and returns those seen at least
// minCount times, sorted by count descending then first occurrence.
func countWindows(content string, words []word, n, minCount int) []Phrase {
	pos := make(map[string]int) // key -> index into all
	var all []Phrase

	keys := make([]string, n)
	for i := 0; i+n <= len(words); i++ {
		for j := range n {
			keys[j] = words[i+j].key
		}
		k := strings.Join(keys, " ")
		span := Span{Start: words[i].start, End: words[i+n-1].end}
		if p, ok := pos[k]; ok {
			all[p].Count++
			all[p].Spans = append(all[p].Spans, span)
			continue
		}
		pos[k] = len(all)
		all = append(all, Phrase{
			Text:  content[span.Start:span.End],
			Key:   k,
			N:     n,
			Count: 1,
			Start: span.Start,
			End:   span.End,
			Spans: []Span{span},
		})
	}

	kept := make([]Phrase, 0, len(all)/4)
	for _, p := range all {
		if p.Count >= minCount {
			kept = append(kept, p)
		}
	}
	slices.SortStableFunc(kept, func(a, b Phrase) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return kept
}

// Package lexicon holds the fixed Arabic word lists used by the
// structural checks: transition words, call-to-action phrases, words
// addressing the reader, conclusion markers, interrogatives and FAQ
// markers.
//
// The default lists are embedded from data/lexicon.yaml and decoded once
// at init. Load reads a replacement file in the same format; lists it
// omits keep their default entries.
//
// Entries and content are both reduced with normalize.NormalizeForAnalysis
// and an entry matches wherever it occurs as a substring, so "بالتالي"
// also matches "وبالتالي" and hamza form, teh marbuta, alef maksura,
// tashkeel, tatweel and punctuation make no difference. Entries that
// normalize to the same string are merged.
//
// Content checked against several lists is normalized once with
// [Prepare].
//
// A Lexicon is immutable after construction and safe for concurrent use.
//
// Known limitations:
//
//   - A short entry also matches inside an unrelated longer word ("انت"
//     inside "انتاج"). The default lists leave out the worst offenders.
//   - Input over 1 MiB is matched without normalization.
package lexicon

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/civanmustafa/Sembrand-editor/data"
	"github.com/civanmustafa/Sembrand-editor/normalize"
)

// maxFileBytes caps the size of a lexicon file read by Load.
const maxFileBytes = 1 << 20 // 1 MiB

// Sentinel errors returned (wrapped) by Load and LoadFile.
var (
	ErrEmptyList = errors.New("lexicon: empty list")
	ErrTooLarge  = errors.New("lexicon: file too large")
)

// Lexicon is the full set of word lists.
type Lexicon struct {
	Transitions    *List
	CTA            *List
	Interactive    *List
	Conclusion     *List
	Interrogatives *List
	FAQ            *List
}

// file mirrors the YAML layout.
type file struct {
	Transitions    []string `yaml:"transitions"`
	CTA            []string `yaml:"cta"`
	Interactive    []string `yaml:"interactive"`
	Conclusion     []string `yaml:"conclusion"`
	Interrogatives []string `yaml:"interrogatives"`
	FAQ            []string `yaml:"faq"`
}

var (
	defaultFile file
	defaultLex  *Lexicon
)

func init() {
	if err := yaml.Unmarshal(data.Lexicon, &defaultFile); err != nil {
		panic(fmt.Sprintf("lexicon: embedded data: %v", err))
	}
	lex, err := build(defaultFile)
	if err != nil {
		panic(fmt.Sprintf("lexicon: embedded data: %v", err))
	}
	defaultLex = lex
}

// Default returns the embedded lexicon.
func Default() *Lexicon {
	return defaultLex
}

// Load decodes a YAML lexicon from r. Keys absent from the document keep
// the default lists; a key present with no usable entries is an error.
// Unknown keys are rejected.
func Load(r io.Reader) (*Lexicon, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxFileBytes+1))
	if err != nil {
		return nil, fmt.Errorf("lexicon: read: %w", err)
	}
	if len(raw) > maxFileBytes {
		return nil, ErrTooLarge
	}

	f := defaultFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("lexicon: decode: %w", err)
	}
	return build(f)
}

// LoadFile is Load for the file at path.
func LoadFile(path string) (*Lexicon, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

func build(f file) (*Lexicon, error) {
	lex := &Lexicon{}
	lists := []struct {
		name    string
		entries []string
		dst     **List
	}{
		{"transitions", f.Transitions, &lex.Transitions},
		{"cta", f.CTA, &lex.CTA},
		{"interactive", f.Interactive, &lex.Interactive},
		{"conclusion", f.Conclusion, &lex.Conclusion},
		{"interrogatives", f.Interrogatives, &lex.Interrogatives},
		{"faq", f.FAQ, &lex.FAQ},
	}
	for _, l := range lists {
		list := NewList(l.entries...)
		if list.Len() == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyList, l.name)
		}
		*l.dst = list
	}
	return lex, nil
}

// Text is content in the normalized form lists match against.
type Text string

// Prepare normalizes content for Distinct, Count and First.
func Prepare(content string) Text {
	return Text(normalize.NormalizeForAnalysis(content))
}

// List is one word list, deduplicated by normalized form.
type List struct {
	entries []string // first spelling of each distinct entry
	keys    []string // normalized form of each entry
}

// NewList builds a List from entries. Blank entries and entries that
// normalize to an already seen string are dropped.
func NewList(entries ...string) *List {
	l := &List{}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		k := normalize.NormalizeForAnalysis(e)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		l.entries = append(l.entries, e)
		l.keys = append(l.keys, k)
	}
	return l
}

// Len returns the number of distinct entries.
func (l *List) Len() int { return len(l.entries) }

// Entries returns a copy of the entries in file order.
func (l *List) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Distinct returns the entries that occur in t, in list order.
func (l *List) Distinct(t Text) []string {
	var found []string
	for i, k := range l.keys {
		if strings.Contains(string(t), k) {
			found = append(found, l.entries[i])
		}
	}
	return found
}

// Count returns the total number of non-overlapping occurrences of all
// entries in t.
func (l *List) Count(t Text) int {
	n := 0
	for _, k := range l.keys {
		n += strings.Count(string(t), k)
	}
	return n
}

// First returns the first entry, in list order, that occurs in t.
func (l *List) First(t Text) (string, bool) {
	for i, k := range l.keys {
		if strings.Contains(string(t), k) {
			return l.entries[i], true
		}
	}
	return "", false
}

// In reports whether any entry occurs in text.
func (l *List) In(text string) bool {
	_, ok := l.First(Prepare(text))
	return ok
}

// Package seo runs every analyzer over one article as a single unit.
//
// Analyze parses the content once, then measures the primary keyword, up
// to four secondary keywords and the company name, extracts repeated
// phrases, runs the structural checks, and collects the keyword highlight
// requests for the editor.
//
// All functions are safe for concurrent use by multiple goroutines.
package seo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/civanmustafa/Sembrand-editor/document"
	"github.com/civanmustafa/Sembrand-editor/highlight"
	"github.com/civanmustafa/Sembrand-editor/keywords"
	"github.com/civanmustafa/Sembrand-editor/lexicon"
	"github.com/civanmustafa/Sembrand-editor/occur"
	"github.com/civanmustafa/Sembrand-editor/phrases"
	"github.com/civanmustafa/Sembrand-editor/structure"
)

// MaxSecondary is the largest number of secondary keywords accepted.
const MaxSecondary = 4

// Errors returned by Params.Validate.
var (
	ErrTooManySecondary = errors.New("seo: too many secondary keywords")
	ErrDuplicateKeyword = errors.New("seo: duplicate keyword")
)

// Params are the terms an article is measured against. Blank terms are
// allowed and produce zero analyses.
type Params struct {
	Primary   string   `json:"primary" yaml:"primary"`
	Secondary []string `json:"secondary" yaml:"secondary"`
	Company   string   `json:"company" yaml:"company"`
}

// Validate reports whether p can be analyzed: at most MaxSecondary
// secondary keywords, none repeating the primary keyword or each other.
func (p Params) Validate() error {
	if len(p.Secondary) > MaxSecondary {
		return fmt.Errorf("%w: %d, max %d", ErrTooManySecondary, len(p.Secondary), MaxSecondary)
	}
	seen := make(map[string]struct{}, len(p.Secondary)+1)
	for _, kw := range append([]string{p.Primary}, p.Secondary...) {
		k := key(kw)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateKeyword, kw)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// key is the normalized match form of a term.
func key(term string) string {
	return strings.Join(occur.Terms(term), " ")
}

// Options tunes the analyzers. The zero value uses the defaults.
type Options struct {
	Lexicon *lexicon.Lexicon
	Phrases phrases.Options
}

// Report holds every analysis of one article.
type Report struct {
	TotalWords int                 `json:"total_words"`
	Primary    keywords.Primary    `json:"primary"`
	Secondary  []keywords.Sub      `json:"secondary"`
	Company    keywords.Company    `json:"company"`
	Phrases    phrases.Result      `json:"phrases"`
	Structure  structure.Report    `json:"structure"`
	Highlights []highlight.Request `json:"highlights"`
}

// Analyze runs every analyzer over content with default options.
func Analyze(content string, p Params) (Report, error) {
	return AnalyzeWith(content, p, Options{})
}

// AnalyzeWith runs every analyzer over content. It fails only when p is
// invalid.
func AnalyzeWith(content string, p Params, opts Options) (Report, error) {
	if err := p.Validate(); err != nil {
		return Report{}, err
	}

	doc := document.Parse(content)
	kw := keywords.NewFromDocument(doc)

	r := Report{
		TotalWords: kw.TotalWords(),
		Primary:    kw.Primary(p.Primary),
		Company:    kw.Company(p.Company),
		Phrases:    phrases.ExtractWith(content, opts.Phrases),
		Structure:  structure.AnalyzeDocument(doc, structure.Options{Lexicon: opts.Lexicon}),
	}
	r.Highlights = highlight.ForOccurrences(r.Primary.Occurrences, highlight.PrimaryKeyword)
	for _, s := range p.Secondary {
		sub := kw.Sub(s)
		r.Secondary = append(r.Secondary, sub)
		r.Highlights = append(r.Highlights, highlight.ForOccurrences(sub.Occurrences, highlight.SubKeyword)...)
	}
	r.Highlights = append(r.Highlights, highlight.ForOccurrences(r.Company.Occurrences, highlight.CompanyName)...)
	highlight.Sort(r.Highlights)
	return r, nil
}

// Package highlight turns analysis results into highlight requests for a
// rich-text editor.
//
// A Request is a literal span of the content plus a semantic Category and
// a display Color. The analyzers never touch the editor; callers collect
// requests with the builders here and hand them to the rendering layer.
//
// Default colors by category:
//
//	primary_keyword  green   #22c55e
//	sub_keyword      orange  #f97316
//	company_name     purple  #a855f7
//	repeated_phrase  yellow  #eab308
//	violation        red     #ef4444
//	focus            blue    #3b82f6
//
// Every Request satisfies content[r.Start:r.End] == r.Text for the content
// it was built from.
package highlight

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/civanmustafa/Sembrand-editor/occur"
	"github.com/civanmustafa/Sembrand-editor/phrases"
	"github.com/civanmustafa/Sembrand-editor/status"
	"github.com/civanmustafa/Sembrand-editor/structure"
)

// Category is the meaning of a highlighted span.
type Category int

const (
	PrimaryKeyword Category = iota // main keyword occurrence
	SubKeyword                     // secondary keyword occurrence
	CompanyName                    // company name occurrence
	RepeatedPhrase                 // repeated n-gram occurrence
	Violation                      // text behind a failed criterion
	Focus                          // item the user selected
)

// categoryNames maps Category values to their string names.
var categoryNames = [...]string{
	PrimaryKeyword: "primary_keyword",
	SubKeyword:     "sub_keyword",
	CompanyName:    "company_name",
	RepeatedPhrase: "repeated_phrase",
	Violation:      "violation",
	Focus:          "focus",
}

// categoryFromName maps string names back to Category values.
var categoryFromName = map[string]Category{
	"primary_keyword": PrimaryKeyword,
	"sub_keyword":     SubKeyword,
	"company_name":    CompanyName,
	"repeated_phrase": RepeatedPhrase,
	"violation":       Violation,
	"focus":           Focus,
}

// String returns the name of the category.
func (c Category) String() string {
	if int(c) >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MarshalJSON encodes the category as a JSON string (e.g. "violation").
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "focus") into a Category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := categoryFromName[s]
	if !ok {
		return fmt.Errorf("highlight: unknown category: %q", s)
	}
	*c = v
	return nil
}

// Color is a named highlight color.
type Color string

const (
	Green  Color = "green"
	Orange Color = "orange"
	Purple Color = "purple"
	Yellow Color = "yellow"
	Red    Color = "red"
	Blue   Color = "blue"
)

var hexColors = map[Color]string{
	Green:  "#22c55e",
	Orange: "#f97316",
	Purple: "#a855f7",
	Yellow: "#eab308",
	Red:    "#ef4444",
	Blue:   "#3b82f6",
}

// Hex returns the CSS hex value of a named color. Unknown colors are
// returned as is, so a caller may pass a CSS value directly.
func (c Color) Hex() string {
	if h, ok := hexColors[c]; ok {
		return h
	}
	return string(c)
}

// defaultColors is indexed by Category.
var defaultColors = [...]Color{
	PrimaryKeyword: Green,
	SubKeyword:     Orange,
	CompanyName:    Purple,
	RepeatedPhrase: Yellow,
	Violation:      Red,
	Focus:          Blue,
}

// DefaultColor returns the color used for category c.
func DefaultColor(c Category) Color {
	if int(c) >= 0 && int(c) < len(defaultColors) {
		return defaultColors[c]
	}
	return Red
}

// Request asks the editor to highlight one span.
type Request struct {
	Text     string   `json:"text"`
	Start    int      `json:"start"` // Byte offset (inclusive)
	End      int      `json:"end"`   // Byte offset (exclusive)
	Category Category `json:"category"`
	Color    Color    `json:"color"`
}

// ForOccurrences returns one request per occurrence.
func ForOccurrences(occs []occur.Occurrence, cat Category) []Request {
	if len(occs) == 0 {
		return nil
	}
	out := make([]Request, len(occs))
	color := DefaultColor(cat)
	for i, o := range occs {
		out[i] = Request{Text: o.Text, Start: o.Start, End: o.End, Category: cat, Color: color}
	}
	return out
}

// ForTerm returns a request for every occurrence of term in content.
func ForTerm(content, term string, cat Category) []Request {
	return ForOccurrences(occur.FindAll(content, term), cat)
}

// ForPhrases returns a request for every recorded occurrence of every
// phrase, in offset order. ps must come from phrases extracted from
// content; spans outside content are skipped.
func ForPhrases(content string, ps []phrases.Phrase) []Request {
	var out []Request
	for _, p := range ps {
		for _, s := range p.Spans {
			if s.Start < 0 || s.End > len(content) || s.Start >= s.End {
				continue
			}
			out = append(out, Request{
				Text:     content[s.Start:s.End],
				Start:    s.Start,
				End:      s.End,
				Category: RepeatedPhrase,
				Color:    DefaultColor(RepeatedPhrase),
			})
		}
	}
	Sort(out)
	return out
}

// ForCriterion returns a Violation request for each offending span of c.
func ForCriterion(c structure.Criterion) []Request {
	if len(c.Violations) == 0 {
		return nil
	}
	out := make([]Request, len(c.Violations))
	for i, s := range c.Violations {
		out[i] = Request{Text: s.Text, Start: s.Start, End: s.End, Category: Violation, Color: Red}
	}
	return out
}

// ForReport returns the Violation requests of every criterion in r that
// is not achieved, in offset order.
func ForReport(r structure.Report) []Request {
	var out []Request
	for _, c := range r.Criteria {
		if c.Status == status.Achieved {
			continue
		}
		out = append(out, ForCriterion(c)...)
	}
	Sort(out)
	return out
}

// WithFocus recolors the requests overlapping [start, end) as Focus.
func WithFocus(reqs []Request, start, end int) []Request {
	out := slices.Clone(reqs)
	for i := range out {
		if out[i].Start < end && start < out[i].End {
			out[i].Category = Focus
			out[i].Color = Blue
		}
	}
	return out
}

// Sort orders requests by start offset, then by longer span first.
func Sort(reqs []Request) {
	slices.SortStableFunc(reqs, func(a, b Request) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(b.End, a.End)
	})
}

// Package keywords measures how an article uses its SEO keywords.
//
// Three analyses are provided, one per kind of term:
//
//   - Primary: the main keyword. Density target 0.7%-0.9%, plus whether it
//     appears in the first and last paragraph and the first and last heading.
//   - Sub: a secondary keyword. Density target 0.1%-0.2%, plus the level-2
//     headings containing it and whether the paragraph right after each
//     such heading repeats it.
//   - Company: the company name. Density target 0.1%-0.2% only.
//
// Occurrences are counted with package occur, so matching tolerates Arabic
// letter variants and diacritics and never counts a word that merely
// contains the term. Density is count / total words * 100, where total
// words is the whitespace-split word count of the whole content.
//
// Target counts are derived from the percentage range with ceil on both
// bounds.
//
// An Analyzer parses the content once and serves any number of terms.
// The package-level functions build a throwaway Analyzer.
//
// All functions are safe for concurrent use by multiple goroutines.
package keywords

import (
	"math"
	"strings"

	"github.com/civanmustafa/Sembrand-editor/occur"
	"github.com/civanmustafa/Sembrand-editor/status"
)

// Default density targets, in percent of total words.
var (
	PrimaryTarget = Range{Min: 0.7, Max: 0.9}
	SubTarget     = Range{Min: 0.1, Max: 0.2}
	CompanyTarget = Range{Min: 0.1, Max: 0.2}
)

// ceilEpsilon absorbs floating-point error before rounding up, so that
// 1000 * 0.7 / 100 rounds to 7 and not 8.
const ceilEpsilon = 1e-9

// Range is a percentage range, bounds inclusive.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CountRange is an occurrence count range, bounds inclusive.
type CountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Density is the count and percentage of a term against its target.
type Density struct {
	TotalWords       int        `json:"total_words"`
	Count            int        `json:"current_count"`
	Percentage       float64    `json:"current_percentage"`
	TargetPercentage Range      `json:"target_percentage"`
	TargetCount      CountRange `json:"target_count"`
}

// InRange reports whether Percentage lies within TargetPercentage.
func (d Density) InRange() bool {
	return d.Percentage >= d.TargetPercentage.Min && d.Percentage <= d.TargetPercentage.Max
}

// Status is Achieved when the percentage is in range, Close when the count
// is within one occurrence of the target count range, and Violation
// otherwise. A term with no words to measure against is a Violation.
func (d Density) Status() status.Status {
	switch {
	case d.TotalWords == 0:
		return status.Violation
	case d.InRange():
		return status.Achieved
	case d.Count >= d.TargetCount.Min-1 && d.Count <= d.TargetCount.Max+1 && d.Count > 0:
		return status.Close
	default:
		return status.Violation
	}
}

// newDensity computes the density of count occurrences in totalWords words.
func newDensity(totalWords, count int, target Range) Density {
	d := Density{
		TotalWords:       totalWords,
		Count:            count,
		TargetPercentage: target,
		TargetCount: CountRange{
			Min: ceilCount(totalWords, target.Min),
			Max: ceilCount(totalWords, target.Max),
		},
	}
	if totalWords > 0 {
		d.Percentage = float64(count) * 100 / float64(totalWords)
	}
	return d
}

func ceilCount(totalWords int, pct float64) int {
	return int(math.Ceil(float64(totalWords)*pct/100 - ceilEpsilon))
}

// blank reports whether term has nothing to match.
func blank(term string) bool {
	return strings.TrimSpace(term) == "" || occur.Terms(term) == nil
}

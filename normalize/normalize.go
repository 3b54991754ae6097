// Package normalize canonicalizes Arabic text for comparison.
//
// Two strings that differ only in hamza placement on alef, waw or yeh,
// in teh marbuta versus heh, in alef maksura versus yeh, in letter case,
// in tashkeel (harakat, tanween, shadda, sukun) or in tatweel normalize
// to the same string. The normalized form is used only for matching;
// callers report positions and surface text from the original input.
//
// Three functions are provided:
//
//   - Normalize folds letter variants, strips tashkeel and tatweel, and
//     lower-cases. Everything else is left in place.
//   - NormalizeForAnalysis additionally replaces every rune outside the
//     Arabic letters and digits with a space, collapses whitespace runs and
//     trims. Latin words and punctuation disappear from the result.
//   - NormalizeWord normalizes a single trimmed token.
//
// Normalize and NormalizeForAnalysis are idempotent.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Persian and Urdu letters (ک، ی، ہ) are not folded onto their
//     Arabic counterparts.
//   - Lam-alef ligatures from the presentation forms block are not
//     decomposed; well-formed input does not use them.
//   - Invalid UTF-8 bytes are dropped.
package normalize

import (
	"strings"
	"unicode"

	"github.com/civanmustafa/Sembrand-editor/internal/arcase"
)

// maxInputBytes is the maximum input size for Normalize.
// Inputs exceeding this are returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// Normalize folds Arabic letter variants, removes tashkeel and tatweel,
// and lower-cases s. Returns "" for "" and the input unchanged for
// oversized (>1 MiB) input.
func Normalize(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}
	return fold(strings.ToValidUTF8(s, ""))
}

// NormalizeForAnalysis returns Normalize(s) reduced to Arabic letters and
// digits separated by single spaces, with no leading or trailing space.
func NormalizeForAnalysis(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}
	n := Normalize(s)

	var b strings.Builder
	b.Grow(len(n))
	pendingSpace := false
	for _, r := range n {
		if !arcase.IsAnalysisRune(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeWord normalizes a single word, trimming surrounding whitespace.
func NormalizeWord(w string) string {
	return Normalize(strings.TrimFunc(w, unicode.IsSpace))
}

// Package arcase provides rune-level helpers for Arabic script: orthographic
// variant folding and classification of diacritics, punctuation and
// sentence terminators.
//
// Variant folding maps the letters writers use interchangeably onto one
// canonical form:
//   - أ (U+0623), إ (U+0625), آ (U+0622), ٱ (U+0671) fold to ا (U+0627)
//   - ؤ (U+0624) folds to و (U+0648)
//   - ئ (U+0626) and ى (U+0649) fold to ي (U+064A)
//   - ة (U+0629) folds to ه (U+0647)
//
// All other runes are returned unchanged.
//
// All functions are safe for concurrent use.
package arcase

// Fold returns the canonical form of an Arabic letter variant.
func Fold(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ', 'ٱ':
		return 'ا' // أ إ آ ٱ -> ا
	case 'ؤ':
		return 'و' // ؤ -> و
	case 'ئ', 'ى':
		return 'ي' // ئ ى -> ي
	case 'ة':
		return 'ه' // ة -> ه
	default:
		return r
	}
}

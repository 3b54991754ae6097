package arcase

import "unicode"

// Arabic block bounds (U+0600..U+06FF).
const (
	blockStart = '\u0600'
	blockEnd   = '\u06ff'
	tatweel    = '\u0640'
)

// IsArabic reports whether r lies in the Arabic Unicode block.
func IsArabic(r rune) bool {
	return r >= blockStart && r <= blockEnd
}

// IsDiacritic reports whether r is an Arabic diacritic: harakat and tanween
// (U+064B..U+065F), superscript alef (U+0670), Quranic annotation signs
// (U+0610..U+061A, U+06D6..U+06ED), or the tatweel elongation mark (U+0640).
func IsDiacritic(r rune) bool {
	switch {
	case r >= '\u064b' && r <= '\u065f':
		return true
	case r == '\u0670', r == tatweel:
		return true
	case r >= '\u0610' && r <= '\u061a':
		return true
	case r >= '\u06d6' && r <= '\u06ed':
		return true
	}
	return false
}

// IsAnalysisRune reports whether r survives analysis normalization:
// an Arabic-block rune that is neither punctuation nor a symbol.
func IsAnalysisRune(r rune) bool {
	if !IsArabic(r) {
		return false
	}
	return !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.Is(unicode.Cf, r)
}

// IsWordRune reports whether r can appear inside a word token:
// any letter, digit, or combining mark (Arabic words carry harakat).
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// IsTerminal reports whether r ends a sentence: . ! ? ؟ or the
// ideographic full stop.
func IsTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '؟', '。':
		return true
	}
	return false
}

// IsParagraphEnd reports whether r is an acceptable final rune for a
// paragraph: a sentence terminator or a colon introducing a list.
func IsParagraphEnd(r rune) bool {
	return IsTerminal(r) && r != '。' || r == ':'
}

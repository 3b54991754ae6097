package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/civanmustafa/Sembrand-editor/internal/arcase"
)

// wordTokens scans a non-empty s rune by rune. The first rune of a token
// decides its type, in this order: whitespace, digit, letter or mark,
// punctuation, and Symbol for the rest.
func wordTokens(s string) []Token {
	toks := make([]Token, 0, len(s)/4+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		var end int
		var typ TokenType
		switch {
		case unicode.IsSpace(r):
			end, typ = skipWhile(s, i, unicode.IsSpace), Space
		case unicode.IsDigit(r):
			end, typ = scanNumber(s, i), Number
		case unicode.IsLetter(r) || unicode.IsMark(r): // tatweel and stray marks open words too
			end, typ = scanWord(s, i), Word
		case unicode.IsPunct(r):
			end, typ = skipWhile(s, i, func(c rune) bool { return c == r }), Punctuation
		default:
			end, typ = i+size, Symbol
		}
		toks = append(toks, Token{Text: s[i:end], Start: i, End: end, Type: typ})
		i = end
	}
	return toks
}

// skipWhile returns the offset of the first rune at or after pos for
// which keep is false. The rune at pos is assumed to satisfy keep.
func skipWhile(s string, pos int, keep func(rune) bool) int {
	_, size := utf8.DecodeRuneInString(s[pos:])
	pos += size
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !keep(r) {
			break
		}
		pos += size
	}
	return pos
}

// peek returns the rune at pos, or utf8.RuneError past the end.
func peek(s string, pos int) rune {
	if pos >= len(s) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return r
}

// scanNumber returns the end of the number starting at pos. A single
// '.', ',', '٫' or '٬' between two digits is part of the number.
func scanNumber(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		switch {
		case unicode.IsDigit(r):
			pos += size
		case isNumberSeparator(r) && unicode.IsDigit(peek(s, pos+size)):
			pos += size
		default:
			return pos
		}
	}
	return pos
}

// scanWord returns the end of the word starting at pos. A single hyphen
// or apostrophe (' or ’) between two word runes joins them, so "ما-قبل"
// and "SEO-friendly" are one word.
func scanWord(s string, pos int) int {
	pos = skipWordRunes(s, pos)
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !isJoiner(r) || !arcase.IsWordRune(peek(s, pos+size)) {
			break
		}
		pos = skipWordRunes(s, pos+size)
	}
	return pos
}

func skipWordRunes(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !arcase.IsWordRune(r) {
			break
		}
		pos += size
	}
	return pos
}

func isJoiner(r rune) bool {
	return r == '-' || r == '\'' || r == '’'
}

func isNumberSeparator(r rune) bool {
	return r == '.' || r == ',' || r == '٫' || r == '٬'
}

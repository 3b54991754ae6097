// Package tokenizer cuts Arabic text into word-level and sentence-level
// tokens that carry byte offsets into the input.
//
// WordTokens covers the whole input: every byte belongs to exactly one
// token, s[t.Start:t.End] == t.Text, and joining the token texts gives s
// back. SentenceTokens returns trimmed sentences with the same offset
// guarantee. Words, Sentences and SentenceCount are shorthands that drop
// the offsets.
//
// A word keeps its harakat, tanween, shadda and tatweel, so a vocalized
// word is a single token. The Arabic marks ، ؛ ؟ ٪ are Punctuation, like
// their Latin forms.
//
// Known limitations:
//
//   - Clitics (و، ف، ب، ال) stay attached: "والكتاب" is one word.
//   - Sentences end at terminal marks only (. ! ? ؟ 。), so decimal
//     points and abbreviations end a sentence.
//   - URLs and e-mail addresses are split like ordinary text.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // letters and marks, with inner hyphens and apostrophes
	Number                       // ASCII or Arabic-Indic digits, with separators between digits
	Punctuation                  // . , ! ? : ; ، ؛ ؟ and other marks; a run of one mark is one token
	Space                        // a run of whitespace, newlines included
	Symbol                       // anything else: emoji, bullets, math signs
	Sentence                     // returned only by SentenceTokens
)

var tokenTypeNames = [...]string{"Word", "Number", "Punctuation", "Space", "Symbol", "Sentence"}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a span of the input.
type Token struct {
	Text  string
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
	Type  TokenType
}

// String formats t for debugging, e.g. Word("كتاب")[0:8].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// WordTokens returns the Word, Number, Punctuation, Space and Symbol
// tokens of s in order. It returns nil for an empty string.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return wordTokens(s)
}

// Words returns the text of each Word token. Numbers are not words.
func Words(s string) []string {
	var out []string
	for _, t := range WordTokens(s) {
		if t.Type == Word {
			out = append(out, t.Text)
		}
	}
	return out
}

// SentenceTokens returns the sentences of s. A sentence runs through the
// terminal marks that end it and is trimmed of surrounding whitespace;
// segments holding only whitespace and marks are skipped.
func SentenceTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return sentenceTokens(s)
}

// Sentences returns the text of each sentence token.
func Sentences(s string) []string {
	toks := SentenceTokens(s)
	if toks == nil {
		return nil
	}
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

// SentenceCount returns len(SentenceTokens(s)).
func SentenceCount(s string) int {
	return len(SentenceTokens(s))
}

package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/civanmustafa/Sembrand-editor/internal/arcase"
)

// sentenceTokens cuts a non-empty s after each run of terminal marks
// ("?!", "...", "؟!"). A segment is kept only if it holds a rune that is
// neither whitespace nor terminal, so "؟؟" alone is not a sentence.
func sentenceTokens(s string) []Token {
	toks := make([]Token, 0, len(s)/40+1)
	start, content := 0, false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !arcase.IsTerminal(r) {
			content = content || !unicode.IsSpace(r)
			i += size
			continue
		}
		i = skipWhile(s, i, arcase.IsTerminal)
		if content {
			toks = append(toks, trimmedSentence(s, start, i))
		}
		start, content = i, false
	}
	if content {
		toks = append(toks, trimmedSentence(s, start, len(s)))
	}
	return toks
}

// trimmedSentence returns s[start:end] without surrounding whitespace.
func trimmedSentence(s string, start, end int) Token {
	seg := s[start:end]
	lead := len(seg) - len(strings.TrimLeftFunc(seg, unicode.IsSpace))
	text := strings.TrimSpace(seg)
	return Token{Text: text, Start: start + lead, End: start + lead + len(text), Type: Sentence}
}

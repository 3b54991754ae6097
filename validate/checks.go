package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/civanmustafa/Sembrand-editor/internal/arcase"
	"github.com/civanmustafa/Sembrand-editor/tokenizer"
)

const (
	ellipsis = "..." // the one repeated run that is not an error
)

// ── Spacing check ──────────────────────────────────────────────────────

// appendSpacingIssues reports every whitespace token holding two
// consecutive spaces. Line breaks and indentation alone are not reported.
func appendSpacingIssues(issues []Issue, tokens []tokenizer.Token) []Issue {
	for i := range tokens {
		if len(issues) >= maxIssues {
			return issues
		}
		tok := &tokens[i]
		if tok.Type != tokenizer.Space || !strings.Contains(tok.Text, "  ") {
			continue
		}
		// Leading indentation on a line is layout, not a typo.
		if i == 0 || strings.Contains(tok.Text, "\n") {
			continue
		}
		issues = append(issues, newIssue(tok, Spacing, Warning, "multiple spaces", " "))
	}
	return issues
}

// ── Punctuation check ──────────────────────────────────────────────────

// appendPunctuationIssues detects a space before punctuation, a missing
// space after a comma, semicolon or sentence end, and repeated marks.
func appendPunctuationIssues(issues []Issue, tokens []tokenizer.Token) []Issue {
	for i := range tokens {
		if len(issues) >= maxIssues {
			return issues
		}

		tok := &tokens[i]

		// Space before punctuation, within a line.
		if tok.Type == tokenizer.Space && i > 0 && i+1 < len(tokens) && !strings.Contains(tok.Text, "\n") {
			next := &tokens[i+1]
			if next.Type == tokenizer.Punctuation && isSpaceSensitivePunct(firstRune(next.Text)) {
				issues = append(issues, newIssue(tok, Punctuation, Warning, "space before punctuation", ""))
				continue
			}
		}

		if tok.Type != tokenizer.Punctuation {
			continue
		}
		r := firstRune(tok.Text)

		// Missing space after a separator or sentence end.
		if isSeparator(r) && i+1 < len(tokens) {
			next := &tokens[i+1]
			if next.Type == tokenizer.Word || next.Type == tokenizer.Number {
				issues = append(issues, newIssue(tok, Punctuation, Warning, "missing space after punctuation", tok.Text+" "))
				continue
			}
		}

		// The tokenizer merges runs of one mark into a single token.
		if isSpaceSensitivePunct(r) && utf8.RuneCountInString(tok.Text) > 1 && tok.Text != ellipsis {
			issues = append(issues, newIssue(tok, Punctuation, Info, "repeated punctuation", string(r)))
		}
	}

	return issues
}

// ── Script check ───────────────────────────────────────────────────────

// arabicForm maps Latin marks to the Arabic marks used in Arabic text.
var arabicForm = map[string]string{
	",": "،",
	";": "؛",
	"?": "؟",
}

// appendScriptIssues reports a Latin comma, semicolon or question mark
// directly following an Arabic word.
func appendScriptIssues(issues []Issue, tokens []tokenizer.Token) []Issue {
	for i := 1; i < len(tokens); i++ {
		if len(issues) >= maxIssues {
			return issues
		}
		tok := &tokens[i]
		if tok.Type != tokenizer.Punctuation {
			continue
		}
		ar, ok := arabicForm[tok.Text]
		if !ok {
			continue
		}
		prev := &tokens[i-1]
		if prev.Type != tokenizer.Word || !isArabicWord(prev.Text) {
			continue
		}
		issues = append(issues, newIssue(tok, Script, Info, "Latin punctuation in Arabic text", ar))
	}
	return issues
}

// ── Helpers ────────────────────────────────────────────────────────────

func newIssue(tok *tokenizer.Token, t IssueType, sev Severity, msg, suggestion string) Issue {
	return Issue{
		Text:       tok.Text,
		Start:      tok.Start,
		End:        tok.End,
		Type:       t,
		Severity:   sev,
		Message:    msg,
		Suggestion: suggestion,
	}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// isSpaceSensitivePunct reports whether r should not be preceded by a space.
func isSpaceSensitivePunct(r rune) bool {
	switch r {
	case ',', '.', ';', ':', '!', '?', '،', '؛', '؟':
		return true
	}
	return false
}

// isSeparator reports whether r must be followed by a space when a word follows.
func isSeparator(r rune) bool {
	switch r {
	case ',', '.', ';', '!', '?', '،', '؛', '؟':
		return true
	}
	return false
}

// isArabicWord reports whether the word's first letter is Arabic.
func isArabicWord(w string) bool {
	for _, r := range w {
		if arcase.IsDiacritic(r) {
			continue
		}
		return arcase.IsArabic(r)
	}
	return false
}

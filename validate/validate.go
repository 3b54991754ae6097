// Package validate finds spacing and punctuation mistakes in Arabic text.
//
// Three kinds of issue are reported:
//
//   - Spacing: two or more spaces between words on one line.
//   - Punctuation: a space before a mark, no space after a comma,
//     semicolon or sentence end, and doubled marks such as "!!" or "؟؟".
//     The ellipsis "..." is accepted.
//   - Script: a Latin comma, semicolon or question mark right after an
//     Arabic word, where ، ؛ or ؟ is expected.
//
// [Validate] returns every issue with its byte span and a score that
// starts at 100 and loses 10 per error, 3 per warning and 1 per info
// issue, never going below 0. The score is not scaled by text length.
// [IsValid] is the yes/no form.
//
// Known limitations:
//
//   - URLs, e-mail addresses and dotted abbreviations are reported as a
//     missing space after a period.
//   - Markdown markers ("**", "##") are skipped.
//   - Brackets and quotes are not paired.
package validate

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/civanmustafa/Sembrand-editor/tokenizer"
)

const (
	maxInputBytes = 1 << 20 // 1 MiB
	maxIssues     = 1000
	maxScore      = 100
)

// IssueType is the kind of mistake an Issue reports.
type IssueType int

const (
	Spacing IssueType = iota
	Punctuation
	Script
)

var issueTypeNames = []string{"spacing", "punctuation", "script"}

func (t IssueType) String() string { return enumName(issueTypeNames, t, "IssueType") }

// MarshalText encodes t by name, so JSON carries "spacing" and not 0.
func (t IssueType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *IssueType) UnmarshalText(b []byte) error {
	return enumParse(issueTypeNames, string(b), "issue type", t)
}

// Severity orders issues; Error is the most severe.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

var severityNames = []string{"info", "warning", "error"}

// penalty is the score deducted per issue of each severity.
var penalty = [...]int{Info: 1, Warning: 3, Error: 10}

func (s Severity) String() string { return enumName(severityNames, s, "Severity") }

// MarshalText encodes s by name.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	return enumParse(severityNames, string(b), "severity", s)
}

func enumName[T ~int](names []string, v T, typ string) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, int(v))
}

func enumParse[T ~int](names []string, s, what string, dst *T) error {
	i := slices.Index(names, s)
	if i < 0 {
		return fmt.Errorf("validate: unknown %s: %q", what, s)
	}
	*dst = T(i)
	return nil
}

// Issue is one mistake. Text is text[Start:End] of the validated input.
type Issue struct {
	Text       string    `json:"text"`
	Start      int       `json:"start"`
	End        int       `json:"end"`
	Type       IssueType `json:"type"`
	Severity   Severity  `json:"severity"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion"` // replacement for Text, if any
}

// Report is the outcome of Validate. Issues are ordered by Start, the
// more severe first on ties.
type Report struct {
	Score  int     `json:"score"`
	Issues []Issue `json:"issues"`
}

// Filter returns the issues of type t in report order.
func (r Report) Filter(t IssueType) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Type == t {
			out = append(out, is)
		}
	}
	return out
}

// Validate checks text and scores it. At most 1000 issues are kept.
// Empty input, and input over 1 MiB, scores 100 with no issues.
func Validate(text string) Report {
	clean := Report{Score: maxScore}
	if text == "" || len(text) > maxInputBytes {
		return clean
	}
	toks := tokenizer.WordTokens(text)
	if len(toks) == 0 {
		return clean
	}

	issues := appendSpacingIssues(nil, toks)
	issues = appendPunctuationIssues(issues, toks)
	issues = appendScriptIssues(issues, toks)
	if len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}
	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(b.Severity, a.Severity))
	})
	return Report{Score: calculateScore(issues), Issues: issues}
}

// IsValid reports whether Validate finds nothing of Warning severity or
// above.
func IsValid(text string) bool {
	return !slices.ContainsFunc(Validate(text).Issues, func(is Issue) bool {
		return is.Severity >= Warning
	})
}

func calculateScore(issues []Issue) int {
	score := maxScore
	for _, is := range issues {
		if is.Severity >= Info && int(is.Severity) < len(penalty) {
			score -= penalty[is.Severity]
		}
	}
	return max(score, 0)
}

package structure

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/civanmustafa/Sembrand-editor/document"
	"github.com/civanmustafa/Sembrand-editor/internal/arcase"
	"github.com/civanmustafa/Sembrand-editor/status"
)

// Thresholds of the paragraph checks.
const (
	minWords   = 800
	closeWords = 600

	summaryMinSentences, summaryMaxSentences = 2, 4
	secondMinSentences, secondMaxSentences   = 2, 3
	introMinWords, introMaxWords             = 30, 60

	paraMinWords, paraMaxWords         = 50, 70
	paraMinSentences, paraMaxSentences = 3, 5
	paraCloseViolators                 = 2

	repeatAchieved = 3
	repeatClose    = 5
)

func checkWordCount(f *facts) Criterion {
	st := status.Violation
	switch {
	case f.words >= minWords:
		st = status.Achieved
	case f.words >= closeWords:
		st = status.Close
	}
	return Criterion{
		ID:       WordCount,
		Status:   st,
		Required: fmt.Sprintf("%d كلمة على الأقل", minWords),
		Current:  fmt.Sprintf("%d كلمة", f.words),
	}
}

func checkSummaryParagraph(f *facts) Criterion {
	c := Criterion{
		ID:       SummaryParagraph,
		Required: fmt.Sprintf("%d-%d جمل (%d-%d كلمة)", summaryMinSentences, summaryMaxSentences, introMinWords, introMaxWords),
	}
	return introParagraph(c, f.paras, 0, summaryMinSentences, summaryMaxSentences)
}

func checkSecondParagraph(f *facts) Criterion {
	c := Criterion{
		ID:       SecondParagraph,
		Required: fmt.Sprintf("%d-%d جمل (%d-%d كلمة)", secondMinSentences, secondMaxSentences, introMinWords, introMaxWords),
	}
	return introParagraph(c, f.paras, 1, secondMinSentences, secondMaxSentences)
}

// introParagraph checks paragraph n against a sentence range and the
// shared word range.
func introParagraph(c Criterion, paras []document.Block, n, minSent, maxSent int) Criterion {
	if n >= len(paras) {
		c.Status = status.Violation
		c.Current = "لا توجد فقرة"
		return c
	}
	p := paras[n]
	sents, words := p.Sentences(), p.Words()
	note := sizeNote(sents, words)
	c.Current = note
	c.Status = status.Bool(inRange(sents, minSent, maxSent) && inRange(words, introMinWords, introMaxWords))
	if c.Status != status.Achieved {
		c.Violations = []Span{spanOf(p, note)}
	}
	return c
}

func checkParagraphLength(f *facts) Criterion {
	c := Criterion{
		ID:       ParagraphLength,
		Required: fmt.Sprintf("%d-%d جمل (%d-%d كلمة)", paraMinSentences, paraMaxSentences, paraMinWords, paraMaxWords),
	}
	for _, p := range f.paras {
		sents, words := p.Sentences(), p.Words()
		if inRange(sents, paraMinSentences, paraMaxSentences) && inRange(words, paraMinWords, paraMaxWords) {
			continue
		}
		c.Violations = append(c.Violations, spanOf(p, sizeNote(sents, words)))
	}
	n := len(c.Violations)
	c.Current = fmt.Sprintf("%d فقرة مخالفة", n)
	switch {
	case n == 0:
		c.Status = status.Achieved
	case n <= paraCloseViolators:
		c.Status = status.Close
	default:
		c.Status = status.Violation
	}
	return c
}

func checkParagraphRepetition(f *facts) Criterion {
	c := Criterion{
		ID:       ParagraphRepetition,
		Required: fmt.Sprintf("%d فقرات على الأكثر", repeatAchieved),
	}
	for _, p := range f.paras {
		if rep := repeatedWords(p.Text); len(rep) > 0 {
			c.Violations = append(c.Violations, spanOf(p, strings.Join(rep, "، ")))
		}
	}
	n := len(c.Violations)
	c.Current = fmt.Sprintf("%d فقرة فيها كلمات مكررة", n)
	switch {
	case n <= repeatAchieved:
		c.Status = status.Achieved
	case n <= repeatClose:
		c.Status = status.Close
	default:
		c.Status = status.Violation
	}
	return c
}

func checkParagraphEnding(f *facts) Criterion {
	c := Criterion{
		ID:       ParagraphEnding,
		Required: "كل فقرة تنتهي بعلامة ترقيم (. ! ? ؟ :)",
	}
	for _, p := range f.paras {
		if !endsParagraph(p.Text) {
			c.Violations = append(c.Violations, spanOf(p, ""))
		}
	}
	c.Current = fmt.Sprintf("%d فقرة بلا علامة نهاية", len(c.Violations))
	c.Status = status.Bool(len(c.Violations) == 0)
	return c
}

// repeatedWords returns the case-folded words that occur more than once
// in s, in order of first appearance.
func repeatedWords(s string) []string {
	fold := cases.Fold()
	seen := make(map[string]int)
	var rep []string
	for _, w := range strings.Fields(s) {
		w = fold.String(w)
		seen[w]++
		if seen[w] == 2 {
			rep = append(rep, w)
		}
	}
	return rep
}

// endsParagraph reports whether s, trimmed, ends with a paragraph end mark.
func endsParagraph(s string) bool {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	r, _ := utf8.DecodeLastRuneInString(s)
	return s != "" && arcase.IsParagraphEnd(r)
}

func sizeNote(sents, words int) string {
	return fmt.Sprintf("%d جمل، %d كلمة", sents, words)
}

func inRange(n, lo, hi int) bool {
	return n >= lo && n <= hi
}

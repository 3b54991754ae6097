package structure

import (
	"fmt"
	"strings"

	"github.com/civanmustafa/Sembrand-editor/document"
	"github.com/civanmustafa/Sembrand-editor/status"
)

// Thresholds of the word-list checks.
const (
	transitionsAchieved = 3

	// interactivePer10k is the required number of interactive words per
	// 10,000 words of content, rounded up.
	interactivePer10k = 2

	conclusionMinWords, conclusionMaxWords = 150, 300
	conclusionCloseMin, conclusionCloseMax = 100, 350
)

// checkTransitionWords counts distinct transition entries. Exactly 2 or
// exactly 4 is close even though 3 is achieved.
func checkTransitionWords(f *facts) Criterion {
	found := f.lex.Transitions.Distinct(f.text)
	n := len(found)
	st := status.Violation
	switch {
	case n == 2 || n == 4:
		st = status.Close
	case n >= transitionsAchieved:
		st = status.Achieved
	}
	return Criterion{
		ID:       TransitionWords,
		Status:   st,
		Required: fmt.Sprintf("%d كلمات مختلفة على الأقل", transitionsAchieved),
		Current:  listNote(n, found),
	}
}

func checkCTA(f *facts) Criterion {
	c := Criterion{
		ID:       CTA,
		Status:   status.Violation,
		Required: "عبارة واحدة على الأقل",
		Current:  "لا توجد",
	}
	if phrase, ok := f.lex.CTA.First(f.text); ok {
		c.Status = status.Achieved
		c.Current = phrase
	}
	return c
}

func checkInteractiveLanguage(f *facts) Criterion {
	need := requiredInteractive(f.words)
	n := f.lex.Interactive.Count(f.text)
	return Criterion{
		ID:       InteractiveLanguage,
		Status:   status.Bool(n >= need),
		Required: fmt.Sprintf("%d كلمة على الأقل", need),
		Current:  fmt.Sprintf("%d كلمة", n),
	}
}

// requiredInteractive returns ceil(words * 0.0002) in integer arithmetic.
func requiredInteractive(words int) int {
	return (words*interactivePer10k + 9999) / 10000
}

func checkConclusionHeading(f *facts) Criterion {
	c := Criterion{
		ID:       ConclusionHeading,
		Status:   status.Violation,
		Required: "آخر عنوان H2 يحتوي كلمة ختامية",
		Current:  "لا يوجد عنوان H2",
	}
	if f.lastH2 < 0 {
		return c
	}
	h := f.doc.Blocks[f.lastH2]
	c.Current = h.Text
	if f.lex.Conclusion.In(h.Text) {
		c.Status = status.Achieved
	} else {
		c.Violations = []Span{spanOf(h, "")}
	}
	return c
}

func checkConclusionParagraph(f *facts) Criterion {
	c := Criterion{
		ID:       ConclusionParagraph,
		Status:   status.Violation,
		Required: "الفقرة الأولى بعد عنوان الخاتمة تحتوي كلمة ختامية",
		Current:  "لا توجد فقرة",
	}
	if f.lastH2 < 0 {
		return c
	}
	p, ok := f.doc.FirstParagraphAfter(f.lastH2)
	if !ok {
		return c
	}
	if f.lex.Conclusion.In(p.Text) {
		c.Status = status.Achieved
		c.Current = "تحتوي كلمة ختامية"
	} else {
		c.Current = "لا تحتوي كلمة ختامية"
		c.Violations = []Span{spanOf(p, "")}
	}
	return c
}

func checkConclusionLength(f *facts) Criterion {
	c := Criterion{
		ID:       ConclusionLength,
		Status:   status.Violation,
		Required: fmt.Sprintf("%d-%d كلمة", conclusionMinWords, conclusionMaxWords),
		Current:  "لا يوجد عنوان H2",
	}
	if f.lastH2 < 0 {
		return c
	}
	words := document.BodyWords(f.conclusion())
	c.Current = fmt.Sprintf("%d كلمة", words)
	switch {
	case inRange(words, conclusionMinWords, conclusionMaxWords):
		c.Status = status.Achieved
	case inRange(words, conclusionCloseMin, conclusionCloseMax):
		c.Status = status.Close
	}
	if c.Status != status.Achieved {
		c.Violations = []Span{spanOf(f.doc.Blocks[f.lastH2], c.Current)}
	}
	return c
}

func checkConclusionList(f *facts) Criterion {
	c := Criterion{
		ID:       ConclusionList,
		Status:   status.Violation,
		Required: "قائمة مرقمة أو نقطية",
		Current:  "لا توجد قائمة",
	}
	if f.lastH2 < 0 {
		return c
	}
	if document.Count(f.conclusion(), document.List, 0) > 0 {
		c.Status = status.Achieved
		c.Current = "توجد قائمة"
	}
	return c
}

// conclusion returns the blocks from the last H2 to the end of the
// document, the heading excluded.
func (f *facts) conclusion() []document.Block {
	return f.doc.Blocks[f.lastH2+1:]
}

// listNote formats a count with the matched entries.
func listNote(n int, found []string) string {
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("%d (%s)", n, strings.Join(found, "، "))
}

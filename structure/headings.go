package structure

import (
	"fmt"
	"strings"

	"github.com/civanmustafa/Sembrand-editor/document"
	"github.com/civanmustafa/Sembrand-editor/status"
)

// Thresholds of the heading checks.
const (
	h3MinParas, h3MaxParas = 1, 2
	h3MinWords, h3MaxWords = 60, 150

	h4Paras                = 1
	h4MinWords, h4MaxWords = 30, 80

	gapMinParas, gapMaxParas = 1, 2
	gapMinWords, gapMaxWords = 50, 140

	interrogativeAchieved = 3
)

// h3Steps are the H2 section sizes at which one more H3 is required.
var h3Steps = [...]int{300, 400, 500, 600}

// requiredH3 returns the number of H3 subheadings an H2 section of the
// given word count must have.
func requiredH3(words int) int {
	n := 0
	for _, step := range h3Steps {
		if words >= step {
			n++
		}
	}
	return n
}

func checkH2Sections(f *facts) Criterion {
	c := Criterion{
		ID:       H2Sections,
		Required: "H3 حسب طول القسم: 1 من 300 كلمة، 2 من 400، 3 من 500، 4 من 600",
	}
	for _, i := range f.h2 {
		sec := f.doc.Section(i)
		words := document.BodyWords(sec)
		if words < h3Steps[0] {
			continue
		}
		want, got := requiredH3(words), document.Count(sec, document.Heading, 3)
		if got != want {
			note := fmt.Sprintf("%d كلمة، %d H3 والمطلوب %d", words, got, want)
			c.Violations = append(c.Violations, spanOf(f.doc.Blocks[i], note))
		}
	}
	c.Current = sectionsNote(len(c.Violations), len(f.h2))
	c.Status = status.Bool(len(f.h2) > 0 && len(c.Violations) == 0)
	return c
}

func checkH3Sections(f *facts) Criterion {
	c := Criterion{
		ID:       H3Sections,
		Required: fmt.Sprintf("%d-%d فقرة (%d-%d كلمة)", h3MinParas, h3MaxParas, h3MinWords, h3MaxWords),
	}
	for _, i := range f.h3 {
		c.Violations = appendSized(c.Violations, f.doc.Blocks[i], f.doc.Section(i),
			h3MinParas, h3MaxParas, h3MinWords, h3MaxWords)
	}
	c.Current = sectionsNote(len(c.Violations), len(f.h3))
	c.Status = status.Bool(len(c.Violations) == 0)
	return c
}

func checkH4Sections(f *facts) Criterion {
	c := Criterion{
		ID:       H4Sections,
		Required: fmt.Sprintf("فقرة واحدة (%d-%d كلمة)", h4MinWords, h4MaxWords),
	}
	for _, i := range f.h4 {
		c.Violations = appendSized(c.Violations, f.doc.Blocks[i], f.doc.Lead(i),
			h4Paras, h4Paras, h4MinWords, h4MaxWords)
	}
	c.Current = sectionsNote(len(c.Violations), len(f.h4))
	c.Status = status.Bool(len(c.Violations) == 0)
	return c
}

func checkH2H3Gap(f *facts) Criterion {
	c := Criterion{
		ID:       H2H3Gap,
		Required: fmt.Sprintf("%d-%d فقرة (%d-%d كلمة)", gapMinParas, gapMaxParas, gapMinWords, gapMaxWords),
	}
	checked := 0
	for _, i := range f.h2 {
		sec := f.doc.Section(i)
		j := firstHeading(sec, 3)
		if j < 0 {
			continue
		}
		checked++
		c.Violations = appendSized(c.Violations, f.doc.Blocks[i], sec[:j],
			gapMinParas, gapMaxParas, gapMinWords, gapMaxWords)
	}
	c.Current = sectionsNote(len(c.Violations), checked)
	c.Status = status.Bool(len(c.Violations) == 0)
	return c
}

func checkHeadingHierarchy(f *facts) Criterion {
	return Criterion{
		ID:       HeadingHierarchy,
		Status:   status.Bool(len(f.h2) > 0),
		Required: "عناوين منظمة بشكل هرمي",
		Current:  fmt.Sprintf("H2: %d, H3: %d, H4: %d", len(f.h2), len(f.h3), len(f.h4)),
	}
}

func checkFAQSection(f *facts) Criterion {
	c := Criterion{
		ID:       FAQSection,
		Status:   status.Violation,
		Required: "عنوان H2 للأسئلة الشائعة",
		Current:  "لا يوجد",
	}
	for _, i := range f.h2 {
		if h := f.doc.Blocks[i]; f.lex.FAQ.In(h.Text) {
			c.Status = status.Achieved
			c.Current = h.Text
			break
		}
	}
	return c
}

func checkInterrogativeH2(f *facts) Criterion {
	n := 0
	for _, i := range f.h2 {
		if f.interrogative(f.doc.Blocks[i].Text) {
			n++
		}
	}
	st := status.Violation
	switch {
	case n >= interrogativeAchieved:
		st = status.Achieved
	case n > 0:
		st = status.Close
	}
	return Criterion{
		ID:       InterrogativeH2,
		Status:   st,
		Required: fmt.Sprintf("%d عناوين على الأقل", interrogativeAchieved),
		Current:  fmt.Sprintf("%d عنوان", n),
	}
}

func checkHeadingRepetition(f *facts) Criterion {
	c := Criterion{
		ID:       HeadingRepetition,
		Required: "لا تكرار للكلمات داخل العنوان",
	}
	for _, h := range f.doc.Headings(0) {
		if rep := repeatedWords(h.Text); len(rep) > 0 {
			c.Violations = append(c.Violations, spanOf(h, strings.Join(rep, "، ")))
		}
	}
	c.Current = fmt.Sprintf("%d عنوان فيه كلمات مكررة", len(c.Violations))
	c.Status = status.Bool(len(c.Violations) == 0)
	return c
}

// interrogative reports whether a heading asks a question: it contains
// an interrogative word or ends with a question mark.
func (f *facts) interrogative(title string) bool {
	if strings.HasSuffix(title, "؟") || strings.HasSuffix(title, "?") {
		return true
	}
	return f.lex.Interrogatives.In(title)
}

// appendSized appends a violation for heading h when the blocks under it
// fall outside the paragraph or word range.
func appendSized(spans []Span, h document.Block, body []document.Block, minParas, maxParas, minWords, maxWords int) []Span {
	paras := document.Count(body, document.Paragraph, 0)
	words := document.BodyWords(body)
	if inRange(paras, minParas, maxParas) && inRange(words, minWords, maxWords) {
		return spans
	}
	return append(spans, spanOf(h, fmt.Sprintf("%d فقرة، %d كلمة", paras, words)))
}

// firstHeading returns the index in bs of the first heading of the given
// level, or -1.
func firstHeading(bs []document.Block, level int) int {
	for j, b := range bs {
		if b.Kind == document.Heading && b.Level == level {
			return j
		}
	}
	return -1
}

func sectionsNote(violations, total int) string {
	return fmt.Sprintf("%d قسم مخالف من %d", violations, total)
}

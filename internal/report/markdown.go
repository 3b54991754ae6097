package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/civanmustafa/Sembrand-editor/keywords"
	"github.com/civanmustafa/Sembrand-editor/phrases"
	"github.com/civanmustafa/Sembrand-editor/status"
	"github.com/civanmustafa/Sembrand-editor/structure"
)

// maxPhraseRows caps the phrase table of a report.
const maxPhraseRows = 20

// statusLabels are the display labels of the three statuses.
var statusLabels = map[status.Status]string{
	status.Achieved:  "✅ محقق",
	status.Close:     "🟡 قريب",
	status.Violation: "❌ مخالف",
}

// MarkdownWriter outputs reports as Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs one section per document.
func (w *MarkdownWriter) Write(results []Result) (int, error) {
	md := markdown.NewMarkdown(w.output)
	for _, r := range results {
		w.writeResult(md, r)
	}
	return len(md.String()), md.Build()
}

// WritePhrases outputs the phrase tables of one document.
func (w *MarkdownWriter) WritePhrases(name string, r phrases.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("العبارات المكررة: " + name)
	md.PlainText("")
	w.writePhraseStats(md, r.Stats)
	w.writePhraseTable(md, r.All(), 0)
	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeResult(md *markdown.Markdown, r Result) {
	rep := r.Report
	md.H1("تقرير السيو: " + r.Name)
	md.PlainText("")
	md.PlainTextf("عدد الكلمات: %d", rep.TotalWords)
	md.PlainText("")

	w.writeKeywords(md, r)
	w.writeStructure(md, rep.Structure)
	w.writeViolations(md, rep.Structure)

	md.H2("العبارات المكررة")
	md.PlainText("")
	w.writePhraseStats(md, rep.Phrases.Stats)
	w.writePhraseTable(md, rep.Phrases.All(), maxPhraseRows)
	md.HorizontalRule()
}

func (w *MarkdownWriter) writeKeywords(md *markdown.Markdown, r Result) {
	rep := r.Report
	var rows [][]string
	if rep.Primary.Keyword != "" {
		rows = append(rows, densityRow("رئيسية", rep.Primary.Keyword, rep.Primary.Density))
	}
	for _, s := range rep.Secondary {
		rows = append(rows, densityRow("فرعية", s.Keyword, s.Density))
	}
	if rep.Company.Name != "" {
		rows = append(rows, densityRow("اسم الشركة", rep.Company.Name, rep.Company.Density))
	}
	if len(rows) == 0 {
		return
	}

	md.H2("الكلمات المفتاحية")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"النوع", "الكلمة", "العدد", "النسبة", "المستهدف", "الحالة"},
		Rows:   rows,
	})
	md.PlainText("")

	var met []string
	if rep.Primary.Keyword != "" {
		met = append(met, placement("الكلمة الرئيسية مستوفاة: "+rep.Primary.Keyword, rep.Primary.Met()))
	}
	for _, s := range rep.Secondary {
		met = append(met, placement("الكلمة الفرعية مستوفاة: "+s.Keyword, s.Met()))
	}
	if len(met) > 0 {
		md.BulletList(met...)
		md.PlainText("")
	}

	if rep.Primary.Keyword != "" {
		p := rep.Primary
		md.BulletList(
			placement("في الفقرة الأولى", p.InFirstParagraph),
			placement("في الفقرة الأخيرة", p.InLastParagraph),
			placement("في العنوان الأول", p.InFirstHeading),
			placement("في العنوان الأخير", p.InLastHeading),
		)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeStructure(md *markdown.Markdown, r structure.Report) {
	md.H2("البنية")
	md.PlainText("")
	md.PlainTextf("محقق: %d، قريب: %d، مخالف: %d", r.Summary.Achieved, r.Summary.Close, r.Summary.Violation)
	md.PlainText("")

	rows := make([][]string, len(r.Criteria))
	for i, c := range r.Criteria {
		rows[i] = []string{c.Title, statusLabels[c.Status], c.Required, c.Current}
	}
	md.Table(markdown.TableSet{
		Header: []string{"المعيار", "الحالة", "المطلوب", "الحالي"},
		Rows:   rows,
	})
	md.PlainText("")

	switch {
	case r.Summary.Violation > 0:
		md.Warningf("%d معيار مخالف.", r.Summary.Violation)
	case r.Summary.Close > 0:
		md.Note("لا مخالفات، وبعض المعايير قريبة من المطلوب.")
	default:
		md.Tip("كل المعايير محققة.")
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeViolations(md *markdown.Markdown, r structure.Report) {
	var items []string
	for _, c := range r.Criteria {
		if c.Status == status.Achieved {
			continue
		}
		for _, s := range c.Violations {
			item := fmt.Sprintf("%s: %s", c.Title, excerpt(s.Text))
			if s.Note != "" {
				item += " (" + s.Note + ")"
			}
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return
	}
	md.H2("المواضع المخالفة")
	md.PlainText("")
	md.BulletList(items...)
	md.PlainText("")
}

func (w *MarkdownWriter) writePhraseStats(md *markdown.Markdown, s phrases.Stats) {
	md.Table(markdown.TableSet{
		Header: []string{"إجمالي الكلمات", "كلمات فريدة", "عبارات مكررة", "مجموع التكرارات"},
		Rows: [][]string{{
			strconv.Itoa(s.TotalWords),
			strconv.Itoa(s.UniqueWords),
			strconv.Itoa(s.RepeatedPhrases),
			strconv.Itoa(s.TotalRepetitions),
		}},
	})
	md.PlainText("")
}

// writePhraseTable writes up to limit phrases; limit 0 writes all.
func (w *MarkdownWriter) writePhraseTable(md *markdown.Markdown, ps []phrases.Phrase, limit int) {
	if len(ps) == 0 {
		md.PlainText("لا توجد عبارات مكررة.")
		md.PlainText("")
		return
	}
	if limit > 0 && len(ps) > limit {
		ps = ps[:limit]
	}
	rows := make([][]string, len(ps))
	for i, p := range ps {
		rows[i] = []string{p.Text, strconv.Itoa(p.N), strconv.Itoa(p.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"العبارة", "الكلمات", "التكرار"},
		Rows:   rows,
	})
	md.PlainText("")
}

func densityRow(kind, term string, d keywords.Density) []string {
	return []string{
		kind,
		term,
		strconv.Itoa(d.Count),
		fmt.Sprintf("%.2f%%", d.Percentage),
		fmt.Sprintf("%d-%d", d.TargetCount.Min, d.TargetCount.Max),
		statusLabels[d.Status()],
	}
}

func placement(label string, ok bool) string {
	if ok {
		return "✅ " + label
	}
	return "❌ " + label
}

// excerptRunes caps the length of a quoted span.
const excerptRunes = 60

// excerpt shortens long spans for display.
func excerpt(s string) string {
	r := []rune(s)
	if len(r) <= excerptRunes {
		return s
	}
	return string(r[:excerptRunes]) + "…"
}

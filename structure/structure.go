// Package structure runs a fixed battery of structural checks over an
// Arabic article and reports one Criterion per check.
//
// The content is parsed once with package document; paragraphs, headings
// by level, word and sentence counts, the normalized text the word lists
// match against and the punctuation report are derived once and shared
// by every check. Each check is a pure function of those facts.
//
// Each Criterion carries a three-way status (achieved, close, violation),
// a human-readable requirement and current value in Arabic, and the
// literal text spans that caused a violation, so a caller can scroll to
// or highlight them.
//
// Word lists (transition words, call-to-action phrases, interactive
// words, conclusion markers, interrogatives, FAQ markers) come from
// package lexicon and match whole words after Arabic normalization.
//
// Conventions:
//
//   - Words are whitespace-separated. The document total counts every
//     field of the raw content; section and paragraph totals count body
//     text only, without heading titles or list markers.
//   - Sentences end at a run of . ! ? ؟ and blank segments are dropped.
//   - A section of heading H runs until the next heading of H's level or
//     higher; the text directly under H runs until the next heading of
//     any level.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Word repetition is exact after case folding: "الكتاب" and "كتاب"
//     are different words, and attached punctuation is part of a word.
//   - Content over 1 MiB parses to an empty document, so every check sees
//     no paragraphs and no headings.
package structure

import (
	"github.com/civanmustafa/Sembrand-editor/document"
	"github.com/civanmustafa/Sembrand-editor/lexicon"
	"github.com/civanmustafa/Sembrand-editor/status"
	"github.com/civanmustafa/Sembrand-editor/validate"
)

// ID names a criterion.
type ID string

// Criterion identifiers, in report order.
const (
	WordCount           ID = "word_count"
	SummaryParagraph    ID = "summary_paragraph"
	SecondParagraph     ID = "second_paragraph"
	ParagraphLength     ID = "paragraph_length"
	H2Sections          ID = "h2_sections"
	H3Sections          ID = "h3_sections"
	H4Sections          ID = "h4_sections"
	H2H3Gap             ID = "h2_h3_gap"
	HeadingHierarchy    ID = "heading_hierarchy"
	FAQSection          ID = "faq_section"
	InterrogativeH2     ID = "interrogative_h2"
	TransitionWords     ID = "transition_words"
	ParagraphRepetition ID = "paragraph_repetition"
	HeadingRepetition   ID = "heading_repetition"
	ParagraphEnding     ID = "paragraph_ending"
	CTA                 ID = "cta"
	InteractiveLanguage ID = "interactive_language"
	ConclusionHeading   ID = "conclusion_heading"
	ConclusionParagraph ID = "conclusion_paragraph"
	ConclusionLength    ID = "conclusion_length"
	ConclusionList      ID = "conclusion_list"
	DoubleSpaces        ID = "double_spaces"
	Punctuation         ID = "punctuation"
)

// titles holds the display title of every criterion.
var titles = map[ID]string{
	WordCount:           "عدد الكلمات",
	SummaryParagraph:    "الفقرة التلخيصية",
	SecondParagraph:     "الفقرة الثانية",
	ParagraphLength:     "طول الفقرات",
	H2Sections:          "أقسام H2",
	H3Sections:          "أقسام H3",
	H4Sections:          "أقسام H4",
	H2H3Gap:             "المحتوى بين H2 و H3",
	HeadingHierarchy:    "التسلسل الهرمي للعناوين",
	FAQSection:          "قسم الأسئلة الشائعة",
	InterrogativeH2:     "عناوين H2 استفهامية",
	TransitionWords:     "الكلمات الانتقالية",
	ParagraphRepetition: "تكرار الكلمات في الفقرات",
	HeadingRepetition:   "تكرار الكلمات في العناوين",
	ParagraphEnding:     "نهاية الفقرات",
	CTA:                 "دعوة لاتخاذ إجراء",
	InteractiveLanguage: "اللغة التفاعلية",
	ConclusionHeading:   "عنوان الخاتمة",
	ConclusionParagraph: "فقرة الخاتمة",
	ConclusionLength:    "طول الخاتمة",
	ConclusionList:      "قائمة في الخاتمة",
	DoubleSpaces:        "الفراغات المزدوجة",
	Punctuation:         "علامات الترقيم",
}

// Span is a literal piece of the content tied to a criterion.
// Content[Start:End] == Text.
type Span struct {
	Text  string `json:"text"`
	Start int    `json:"start"` // Byte offset (inclusive)
	End   int    `json:"end"`   // Byte offset (exclusive)
	Note  string `json:"note,omitempty"`
}

// Criterion is the result of one structural check.
type Criterion struct {
	ID         ID            `json:"id"`
	Title      string        `json:"title"`
	Status     status.Status `json:"status"`
	Required   string        `json:"required"`
	Current    string        `json:"current"`
	Violations []Span        `json:"violations,omitempty"`
}

// Summary counts criteria by status.
type Summary struct {
	Achieved  int `json:"achieved"`
	Close     int `json:"close"`
	Violation int `json:"violation"`
}

// Report is the outcome of the full battery.
type Report struct {
	Criteria []Criterion `json:"criteria"`
	Summary  Summary     `json:"summary"`
}

// Get returns the criterion with the given ID.
func (r Report) Get(id ID) (Criterion, bool) {
	for _, c := range r.Criteria {
		if c.ID == id {
			return c, true
		}
	}
	return Criterion{}, false
}

// Options configures AnalyzeWith.
type Options struct {
	// Lexicon supplies the word lists. Nil uses lexicon.Default().
	Lexicon *lexicon.Lexicon
}

// Analyze runs every check over content with the default word lists.
func Analyze(content string) Report {
	return AnalyzeDocument(document.Parse(content), Options{})
}

// AnalyzeWith runs every check over content with the given options.
func AnalyzeWith(content string, opts Options) Report {
	return AnalyzeDocument(document.Parse(content), opts)
}

// AnalyzeDocument runs every check over an already parsed document.
func AnalyzeDocument(doc *document.Document, opts Options) Report {
	f := newFacts(doc, opts)
	r := Report{Criteria: make([]Criterion, 0, len(checks))}
	for _, check := range checks {
		c := check(f)
		c.Title = titles[c.ID]
		switch c.Status {
		case status.Achieved:
			r.Summary.Achieved++
		case status.Close:
			r.Summary.Close++
		default:
			r.Summary.Violation++
		}
		r.Criteria = append(r.Criteria, c)
	}
	return r
}

// checks is the battery, in report order.
var checks = []func(*facts) Criterion{
	checkWordCount,
	checkSummaryParagraph,
	checkSecondParagraph,
	checkParagraphLength,
	checkH2Sections,
	checkH3Sections,
	checkH4Sections,
	checkH2H3Gap,
	checkHeadingHierarchy,
	checkFAQSection,
	checkInterrogativeH2,
	checkTransitionWords,
	checkParagraphRepetition,
	checkHeadingRepetition,
	checkParagraphEnding,
	checkCTA,
	checkInteractiveLanguage,
	checkConclusionHeading,
	checkConclusionParagraph,
	checkConclusionLength,
	checkConclusionList,
	checkDoubleSpaces,
	checkPunctuation,
}

// facts are derived once per document and shared by every check.
type facts struct {
	doc   *document.Document
	lex   *lexicon.Lexicon
	text  lexicon.Text
	words int

	paras      []document.Block
	h2, h3, h4 []int // block indexes
	lastH2     int   // block index of the last H2, -1 if none

	punct validate.Report
}

func newFacts(doc *document.Document, opts Options) *facts {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	f := &facts{
		doc:    doc,
		lex:    lex,
		text:   lexicon.Prepare(doc.Content),
		words:  doc.Words(),
		paras:  doc.Paragraphs(),
		h2:     doc.HeadingIndexes(2),
		h3:     doc.HeadingIndexes(3),
		h4:     doc.HeadingIndexes(4),
		lastH2: -1,
		punct:  validate.Validate(doc.Content),
	}
	if len(f.h2) > 0 {
		f.lastH2 = f.h2[len(f.h2)-1]
	}
	return f
}

// spanOf returns the span of a block.
func spanOf(b document.Block, note string) Span {
	return Span{Text: b.Text, Start: b.Start, End: b.End, Note: note}
}

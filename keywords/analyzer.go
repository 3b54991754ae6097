package keywords

import (
	"github.com/civanmustafa/Sembrand-editor/document"
	"github.com/civanmustafa/Sembrand-editor/occur"
)

// Primary is the analysis of the main keyword.
type Primary struct {
	Keyword string `json:"keyword"`
	Density
	InFirstParagraph bool               `json:"in_first_paragraph"`
	InLastParagraph  bool               `json:"in_last_paragraph"`
	InFirstHeading   bool               `json:"in_first_heading"`
	InLastHeading    bool               `json:"in_last_heading"`
	Occurrences      []occur.Occurrence `json:"occurrences"`
}

// Met reports whether the density is in range and every placement holds.
func (p Primary) Met() bool {
	return p.InRange() && p.InFirstParagraph && p.InLastParagraph && p.InFirstHeading && p.InLastHeading
}

// H2Match is one level-2 heading containing a secondary keyword.
type H2Match struct {
	Heading             string `json:"heading"`
	Start               int    `json:"start"`
	End                 int    `json:"end"`
	ParagraphHasKeyword bool   `json:"paragraph_has_keyword"`
}

// Sub is the analysis of a secondary keyword.
type Sub struct {
	Keyword string `json:"keyword"`
	Density
	InH2Heading       bool               `json:"in_h2_heading"`
	InSameH2Paragraph bool               `json:"in_same_h2_paragraph"`
	H2Headings        []string           `json:"h2_headings_containing"`
	H2Matches         []H2Match          `json:"h2_matches"`
	Occurrences       []occur.Occurrence `json:"occurrences"`
}

// Met reports whether the keyword anchors an H2 whose first paragraph
// repeats it and its density is in range.
func (s Sub) Met() bool {
	return s.InH2Heading && s.InSameH2Paragraph && s.InRange()
}

// Company is the analysis of the company name.
type Company struct {
	Name string `json:"name"`
	Density
	Occurrences []occur.Occurrence `json:"occurrences"`
}

// Analyzer answers keyword questions about one content string.
type Analyzer struct {
	doc        *document.Document
	idx        *occur.Index
	totalWords int
}

// New parses content once for repeated keyword analysis.
func New(content string) *Analyzer {
	return NewFromDocument(document.Parse(content))
}

// NewFromDocument builds an Analyzer over an already parsed document.
func NewFromDocument(doc *document.Document) *Analyzer {
	return &Analyzer{
		doc:        doc,
		idx:        occur.NewIndex(doc.Content),
		totalWords: doc.Words(),
	}
}

// TotalWords returns the whitespace-split word count of the content.
func (a *Analyzer) TotalWords() int { return a.totalWords }

// AnalyzePrimary analyzes keyword as the primary keyword of content.
func AnalyzePrimary(content, keyword string) Primary { return New(content).Primary(keyword) }

// AnalyzeSub analyzes keyword as a secondary keyword of content.
func AnalyzeSub(content, keyword string) Sub { return New(content).Sub(keyword) }

// AnalyzeCompany analyzes name as the company name in content.
func AnalyzeCompany(content, name string) Company { return New(content).Company(name) }

// Primary analyzes keyword as the primary keyword.
// A blank keyword yields a zero analysis.
func (a *Analyzer) Primary(keyword string) Primary {
	p := Primary{Keyword: keyword}
	if blank(keyword) {
		return p
	}
	p.Occurrences = a.idx.FindAll(keyword)
	p.Density = newDensity(a.totalWords, len(p.Occurrences), PrimaryTarget)

	seq := occur.Terms(keyword)
	if paras := a.doc.Paragraphs(); len(paras) > 0 {
		p.InFirstParagraph = blockHas(paras[0], seq)
		p.InLastParagraph = blockHas(paras[len(paras)-1], seq)
	}
	if heads := a.doc.Headings(0); len(heads) > 0 {
		p.InFirstHeading = blockHas(heads[0], seq)
		p.InLastHeading = blockHas(heads[len(heads)-1], seq)
	}
	return p
}

// Sub analyzes keyword as a secondary keyword.
// A blank keyword yields a zero analysis.
func (a *Analyzer) Sub(keyword string) Sub {
	s := Sub{Keyword: keyword}
	if blank(keyword) {
		return s
	}
	s.Occurrences = a.idx.FindAll(keyword)
	s.Density = newDensity(a.totalWords, len(s.Occurrences), SubTarget)

	seq := occur.Terms(keyword)
	for _, i := range a.doc.HeadingIndexes(2) {
		h := a.doc.Blocks[i]
		if !blockHas(h, seq) {
			continue
		}
		m := H2Match{Heading: h.Text, Start: h.Start, End: h.End}
		if para, ok := a.doc.FirstParagraphAfter(i); ok {
			m.ParagraphHasKeyword = blockHas(para, seq)
		}
		s.H2Matches = append(s.H2Matches, m)
		s.H2Headings = append(s.H2Headings, h.Text)
		s.InSameH2Paragraph = s.InSameH2Paragraph || m.ParagraphHasKeyword
	}
	s.InH2Heading = len(s.H2Matches) > 0
	return s
}

// Company analyzes name as the company name.
// A blank name yields a zero analysis.
func (a *Analyzer) Company(name string) Company {
	c := Company{Name: name}
	if blank(name) {
		return c
	}
	c.Occurrences = a.idx.FindAll(name)
	c.Density = newDensity(a.totalWords, len(c.Occurrences), CompanyTarget)
	return c
}

// blockHas reports whether the block text contains the term sequence.
func blockHas(b document.Block, seq []string) bool {
	return occur.NewIndex(b.Text).ContainsTerms(seq)
}

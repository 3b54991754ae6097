package document

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxHeadingLevel is the deepest heading recognized.
const maxHeadingLevel = 4

// Parse splits content into blocks. Empty and oversized (>1 MiB) content
// yields a Document with no blocks.
func Parse(content string) *Document {
	d := &Document{Content: content}
	if content == "" || len(content) > maxInputBytes {
		return d
	}

	p := parser{content: content}
	pos := 0
	for pos < len(content) {
		end := strings.IndexByte(content[pos:], '\n')
		if end < 0 {
			end = len(content)
		} else {
			end += pos
		}
		p.line(pos, end)
		pos = end + 1
	}
	p.flush()

	d.Blocks = p.blocks
	return d
}

// parser accumulates blocks line by line. At most one of the open
// paragraph and the open list is active at a time.
type parser struct {
	content string
	blocks  []Block

	paraStart, paraEnd int
	inPara             bool

	list   *Block
	inList bool
}

// line classifies content[start:end], a line without its newline.
func (p *parser) line(start, end int) {
	raw := p.content[start:end]
	trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)
	textStart := start + len(raw) - len(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	textEnd := textStart + len(trimmed)

	if trimmed == "" {
		p.flush()
		return
	}

	if level, off, ok := headingMarker(trimmed); ok {
		p.flush()
		p.blocks = append(p.blocks, Block{
			Kind:  Heading,
			Level: level,
			Text:  trimmed[off:],
			Start: textStart + off,
			End:   textEnd,
		})
		return
	}

	if ordered, off, ok := listMarker(trimmed); ok {
		p.flushPara()
		if p.inList && p.list.Ordered != ordered {
			p.flushList()
		}
		if !p.inList {
			p.list = &Block{Kind: List, Ordered: ordered, Start: textStart}
			p.inList = true
		}
		p.list.End = textEnd
		p.list.Items = append(p.list.Items, Item{
			Text:  trimmed[off:],
			Start: textStart + off,
			End:   textEnd,
		})
		return
	}

	p.flushList()
	if !p.inPara {
		p.paraStart = textStart
		p.inPara = true
	}
	p.paraEnd = textEnd
}

func (p *parser) flush() {
	p.flushPara()
	p.flushList()
}

func (p *parser) flushPara() {
	if !p.inPara {
		return
	}
	p.blocks = append(p.blocks, Block{
		Kind:  Paragraph,
		Text:  p.content[p.paraStart:p.paraEnd],
		Start: p.paraStart,
		End:   p.paraEnd,
	})
	p.inPara = false
}

func (p *parser) flushList() {
	if !p.inList {
		return
	}
	p.list.Text = p.content[p.list.Start:p.list.End]
	p.blocks = append(p.blocks, *p.list)
	p.list = nil
	p.inList = false
}

// headingMarker reports whether line starts with 1 to 4 '#' followed by
// whitespace and a non-empty title. off is the byte offset of the title.
func headingMarker(line string) (level, off int, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > maxHeadingLevel || n == len(line) {
		return 0, 0, false
	}
	r, _ := utf8.DecodeRuneInString(line[n:])
	if !unicode.IsSpace(r) {
		return 0, 0, false
	}
	title := strings.TrimLeftFunc(line[n:], unicode.IsSpace)
	if title == "" {
		return 0, 0, false
	}
	return n, len(line) - len(title), true
}

// listMarker reports whether line starts with an ordered ("12. ") or
// unordered ("• ", "- ", "* ") list marker followed by a non-empty item.
// An ordered marker needs no space before the item ("1.الخطوة") unless
// a digit follows, as in "1.5". off is the byte offset of the item text.
func listMarker(line string) (ordered bool, off int, ok bool) {
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if !unicode.IsDigit(r) {
			break
		}
		i += size
	}
	switch {
	case i > 0:
		if i >= len(line) || line[i] != '.' {
			return false, 0, false
		}
		ordered = true
		i++
	case strings.HasPrefix(line, "•"):
		i = len("•")
	case line[0] == '-' || line[0] == '*':
		i = 1
	default:
		return false, 0, false
	}

	if i >= len(line) {
		return false, 0, false
	}
	r, _ := utf8.DecodeRuneInString(line[i:])
	if ordered && unicode.IsDigit(r) || !ordered && !unicode.IsSpace(r) {
		return false, 0, false
	}
	item := strings.TrimLeftFunc(line[i:], unicode.IsSpace)
	if item == "" {
		return false, 0, false
	}
	return ordered, len(line) - len(item), true
}

// Package document parses plain-text article content into typed blocks.
//
// The input follows the editor's plain-text contract:
//
//   - Headings are "#" repeated 1 to 4 times, whitespace, then the title.
//   - Ordered list items are "N. text", unordered items "• text", "- text"
//     or "* text", one per line.
//   - Paragraphs are maximal runs of other non-blank lines, separated by
//     one or more blank lines.
//
// Parse builds the block sequence once; analyzers query it instead of
// re-deriving paragraph and heading boundaries.
//
// Byte-offset invariant: for every Block b of a Document d,
// d.Content[b.Start:b.End] == b.Text. For headings Text is the title with
// the hash marker excluded.
//
// A Document is immutable after Parse and safe for concurrent reads.
//
// Known limitations:
//
//   - Lines of five or more "#" are paragraph text, not headings.
//   - Nested lists are flattened into a single level.
//   - A list item has no continuation lines; the next non-list line
//     starts a paragraph.
//   - Unordered markers need a space before the item, so "-نص" and
//     "**مهم**" stay paragraph text. Ordered markers do not ("1.الخطوة").
package document

import (
	"fmt"
	"strings"

	"github.com/civanmustafa/Sembrand-editor/tokenizer"
)

// maxInputBytes is the maximum content size accepted by Parse.
// Larger inputs yield an empty Document.
const maxInputBytes = 1 << 20 // 1 MiB

// Kind classifies a block.
type Kind int

const (
	Paragraph Kind = iota // Run of non-blank, non-heading, non-list lines
	Heading               // "#"-prefixed line, Level 1..4
	List                  // Consecutive list item lines of one kind
)

// String returns the name of the block kind.
func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "Paragraph"
	case Heading:
		return "Heading"
	case List:
		return "List"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Item is one list entry with its marker stripped.
type Item struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Block is one structural unit of a document.
type Block struct {
	Kind    Kind   `json:"kind"`
	Level   int    `json:"level,omitempty"`   // Heading level 1..4, 0 otherwise
	Text    string `json:"text"`              // Title, paragraph text, or raw list lines
	Start   int    `json:"start"`             // Byte offset of Text in Content (inclusive)
	End     int    `json:"end"`               // Byte offset of Text in Content (exclusive)
	Items   []Item `json:"items,omitempty"`   // List entries
	Ordered bool   `json:"ordered,omitempty"` // List uses "N." markers
}

// Words returns the whitespace-separated word count of the block.
// List markers are not counted.
func (b Block) Words() int {
	if b.Kind != List {
		return WordCount(b.Text)
	}
	n := 0
	for _, it := range b.Items {
		n += WordCount(it.Text)
	}
	return n
}

// Sentences returns the number of sentences in the block text.
func (b Block) Sentences() int {
	return tokenizer.SentenceCount(b.Text)
}

// String returns a debug representation, e.g. Heading2("مقدمة")[3:13].
func (b Block) String() string {
	if b.Kind == Heading {
		return fmt.Sprintf("Heading%d(%q)[%d:%d]", b.Level, b.Text, b.Start, b.End)
	}
	return fmt.Sprintf("%s(%q)[%d:%d]", b.Kind, b.Text, b.Start, b.End)
}

// Document is the parsed form of a content string.
type Document struct {
	Content string
	Blocks  []Block
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Words returns the total word count of the raw content, heading and list
// markers included.
func (d *Document) Words() int {
	return WordCount(d.Content)
}

// Paragraphs returns the paragraph blocks in document order.
func (d *Document) Paragraphs() []Block {
	return d.filter(func(b Block) bool { return b.Kind == Paragraph })
}

// Headings returns heading blocks of the given level in document order.
// Level 0 returns headings of every level.
func (d *Document) Headings(level int) []Block {
	return d.filter(func(b Block) bool {
		return b.Kind == Heading && (level == 0 || b.Level == level)
	})
}

// HeadingIndexes returns the block indexes of headings of the given level.
// Level 0 matches every level.
func (d *Document) HeadingIndexes(level int) []int {
	var idx []int
	for i, b := range d.Blocks {
		if b.Kind == Heading && (level == 0 || b.Level == level) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Section returns the blocks following the heading at block index i up to,
// but excluding, the next heading of equal or higher precedence (a level
// less than or equal to its own). Returns nil if i is not a heading.
func (d *Document) Section(i int) []Block {
	if i < 0 || i >= len(d.Blocks) || d.Blocks[i].Kind != Heading {
		return nil
	}
	level := d.Blocks[i].Level
	end := i + 1
	for end < len(d.Blocks) {
		b := d.Blocks[end]
		if b.Kind == Heading && b.Level <= level {
			break
		}
		end++
	}
	return d.Blocks[i+1 : end]
}

// Lead returns the blocks between the heading at index i and the next
// heading of any level. Returns nil if i is not a heading.
func (d *Document) Lead(i int) []Block {
	if i < 0 || i >= len(d.Blocks) || d.Blocks[i].Kind != Heading {
		return nil
	}
	end := i + 1
	for end < len(d.Blocks) && d.Blocks[end].Kind != Heading {
		end++
	}
	return d.Blocks[i+1 : end]
}

// FirstParagraphAfter returns the first paragraph following block index i
// before any other heading, and whether one exists.
func (d *Document) FirstParagraphAfter(i int) (Block, bool) {
	for _, b := range d.Lead(i) {
		if b.Kind == Paragraph {
			return b, true
		}
	}
	return Block{}, false
}

func (d *Document) filter(keep func(Block) bool) []Block {
	var out []Block
	for _, b := range d.Blocks {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// ── Block slice helpers ──

// BodyWords sums the word counts of the non-heading blocks in bs.
func BodyWords(bs []Block) int {
	n := 0
	for _, b := range bs {
		if b.Kind != Heading {
			n += b.Words()
		}
	}
	return n
}

// Count returns the number of blocks in bs of kind k. For headings, a
// non-zero level restricts the count to that level.
func Count(bs []Block, k Kind, level int) int {
	n := 0
	for _, b := range bs {
		if b.Kind == k && (k != Heading || level == 0 || b.Level == level) {
			n++
		}
	}
	return n
}

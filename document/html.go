package document

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML converts editor HTML into the plain-text form Parse expects.
// h1-h4 become "#" headings, p and div become paragraphs, ol and ul items
// become "N. " and "- " lines, and br becomes a line break. Paragraphs
// inside a list item, as rich-text editors emit them, stay part of the
// item line. Blocks are separated by a blank line. Script, style and template contents are
// dropped; h5 and h6 are emitted as paragraphs.
func FromHTML(r io.Reader) (string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("document: parse html: %w", err)
	}

	w := &htmlWriter{}
	w.walk(root)
	w.endBlock()
	return strings.TrimSpace(w.out.String()), nil
}

// htmlWriter serializes the node tree block by block. Inline text is
// buffered in cur and written when the enclosing block ends.
type htmlWriter struct {
	out strings.Builder
	cur strings.Builder

	prefix string // marker for the block being buffered
	lists  []listState
	items  int // open li elements
}

type listState struct {
	ordered bool
	n       int
}

func (w *htmlWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
	default:
		w.children(n)
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Template, atom.Head:
		return
	case atom.Br:
		w.cur.WriteByte('\n')
		return
	case atom.H1, atom.H2, atom.H3, atom.H4:
		w.endBlock()
		level := int(n.Data[1] - '0')
		w.prefix = strings.Repeat("#", level) + " "
		w.children(n)
		w.endBlock()
	case atom.P, atom.Div, atom.H5, atom.H6, atom.Blockquote:
		if w.items > 0 {
			w.cur.WriteByte('\n')
			w.children(n)
			w.cur.WriteByte('\n')
			return
		}
		w.endBlock()
		w.children(n)
		w.endBlock()
	case atom.Ul, atom.Ol:
		if w.items > 0 {
			w.endItem()
		} else {
			w.endBlock()
		}
		w.lists = append(w.lists, listState{ordered: n.DataAtom == atom.Ol})
		w.children(n)
		w.lists = w.lists[:len(w.lists)-1]
		if len(w.lists) == 0 {
			w.out.WriteByte('\n')
		}
	case atom.Li:
		w.endBlock()
		w.prefix = w.itemMarker()
		w.items++
		w.children(n)
		w.items--
		w.endItem()
	default:
		w.children(n)
	}
}

func (w *htmlWriter) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// text appends inline text with whitespace runs collapsed to one space.
func (w *htmlWriter) text(s string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" && w.cur.Len() > 0 {
			w.space()
		}
		return
	}
	if s[0] == ' ' || s[0] == '\n' || s[0] == '\t' {
		w.space()
	}
	w.cur.WriteString(strings.Join(fields, " "))
	last := s[len(s)-1]
	if last == ' ' || last == '\n' || last == '\t' {
		w.space()
	}
}

func (w *htmlWriter) space() {
	if w.cur.Len() == 0 {
		return
	}
	cur := w.cur.String()
	if c := cur[len(cur)-1]; c != ' ' && c != '\n' {
		w.cur.WriteByte(' ')
	}
}

func (w *htmlWriter) itemMarker() string {
	if len(w.lists) == 0 {
		return "- "
	}
	top := &w.lists[len(w.lists)-1]
	if !top.ordered {
		return "- "
	}
	top.n++
	return strconv.Itoa(top.n) + ". "
}

// content returns the buffered text with each line trimmed and blank
// lines removed, then resets the buffer.
func (w *htmlWriter) content() string {
	lines := strings.Split(w.cur.String(), "\n")
	kept := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	w.cur.Reset()
	return strings.Join(kept, "\n")
}

// endBlock writes the buffered text as a block followed by a blank line.
func (w *htmlWriter) endBlock() {
	text := w.content()
	prefix := w.prefix
	w.prefix = ""
	if text == "" {
		return
	}
	if prefix != "" {
		// A heading or item is a single line.
		text = strings.ReplaceAll(text, "\n", " ")
	}
	w.out.WriteString(prefix)
	w.out.WriteString(text)
	w.out.WriteString("\n\n")
}

// endItem writes a list item as one line without a trailing blank line.
func (w *htmlWriter) endItem() {
	text := strings.ReplaceAll(w.content(), "\n", " ")
	prefix := w.prefix
	w.prefix = ""
	if text == "" {
		return
	}
	w.out.WriteString(prefix)
	w.out.WriteString(text)
	w.out.WriteByte('\n')
}

package occur

import "strings"

// Replace substitutes repl for the first n occurrences of term in content
// (n < 0: all) and returns the new content with the number of
// replacements made. Matching follows FindAll; repl is inserted verbatim.
func Replace(content, term, repl string, n int) (string, int) {
	if n == 0 {
		return content, 0
	}
	occs := NewIndex(content).find(Terms(term), n)
	if len(occs) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, o := range occs {
		b.WriteString(content[last:o.Start])
		b.WriteString(repl)
		last = o.End
	}
	b.WriteString(content[last:])
	return b.String(), len(occs)
}

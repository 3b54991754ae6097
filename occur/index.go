package occur

// Index is a tokenized, normalized view of one content string. It answers
// many term queries without re-tokenizing the content.
// An Index is immutable and safe for concurrent use.
type Index struct {
	content string
	keys    []key
	byKey   map[string][]int // normalized token -> positions in keys
}

// NewIndex tokenizes and normalizes content once.
// Oversized (>1 MiB) content yields an empty Index.
func NewIndex(content string) *Index {
	idx := &Index{content: content}
	if content == "" || len(content) > maxInputBytes {
		return idx
	}
	idx.keys = keys(content)
	idx.byKey = make(map[string][]int, len(idx.keys))
	for i, k := range idx.keys {
		idx.byKey[k.norm] = append(idx.byKey[k.norm], i)
	}
	return idx
}

// Content returns the indexed content.
func (x *Index) Content() string { return x.content }

// Words returns the number of word and number tokens in the content.
func (x *Index) Words() int { return len(x.keys) }

// FindAll returns every non-overlapping occurrence of term, leftmost first.
func (x *Index) FindAll(term string) []Occurrence {
	return x.find(Terms(term), -1)
}

// Count returns the number of non-overlapping occurrences of term.
func (x *Index) Count(term string) int {
	return len(x.FindAll(term))
}

// Contains reports whether term occurs at least once.
func (x *Index) Contains(term string) bool {
	return len(x.find(Terms(term), 1)) > 0
}

// ContainsTerms is Contains for a term already split by Terms.
func (x *Index) ContainsTerms(seq []string) bool {
	return len(x.find(seq, 1)) > 0
}

// CountTerms is Count for a term already split by Terms.
func (x *Index) CountTerms(seq []string) int {
	return len(x.find(seq, -1))
}

// find matches seq against the content tokens and returns at most limit
// occurrences (limit < 0: all).
func (x *Index) find(seq []string, limit int) []Occurrence {
	if len(seq) == 0 || len(x.keys) == 0 || limit == 0 {
		return nil
	}

	var out []Occurrence
	next := 0 // first key position not covered by a previous match
	for _, p := range x.byKey[seq[0]] {
		if p < next || p+len(seq) > len(x.keys) {
			continue
		}
		if !x.matchAt(p, seq) {
			continue
		}
		start := x.keys[p].start
		end := x.keys[p+len(seq)-1].end
		out = append(out, Occurrence{Start: start, End: end, Text: x.content[start:end]})
		if limit > 0 && len(out) == limit {
			break
		}
		next = p + len(seq)
	}
	return out
}

func (x *Index) matchAt(p int, seq []string) bool {
	for j := 1; j < len(seq); j++ {
		if x.keys[p+j].norm != seq[j] {
			return false
		}
	}
	return true
}

package occur

import (
	"slices"
	"strings"
	"sync"
	"testing"
)

// verifyOccurrences checks offsets, surface text, ordering and non-overlap.
func verifyOccurrences(t *testing.T, content string, occs []Occurrence) {
	t.Helper()
	prevEnd := 0
	for i, o := range occs {
		if o.Start < 0 || o.End > len(content) || o.Start >= o.End {
			t.Errorf("occurrence %d has invalid span [%d:%d] (len=%d)", i, o.Start, o.End, len(content))
			continue
		}
		if content[o.Start:o.End] != o.Text {
			t.Errorf("occurrence %d text %q != content[%d:%d] %q", i, o.Text, o.Start, o.End, content[o.Start:o.End])
		}
		if o.Start < prevEnd {
			t.Errorf("occurrence %d [%d:%d] overlaps previous end %d", i, o.Start, o.End, prevEnd)
		}
		prevEnd = o.End
	}
}

func texts(occs []Occurrence) []string {
	if len(occs) == 0 {
		return nil
	}
	out := make([]string, len(occs))
	for i, o := range occs {
		out[i] = o.Text
	}
	return out
}

// ---------------------------------------------------------------------------
// FindAll: table-driven tests
// ---------------------------------------------------------------------------

func TestFindAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		term    string
		want    []string
	}{
		{"empty content", "", "كتاب", nil},
		{"empty term", "كتاب مفيد", "", nil},
		{"punctuation-only term", "كتاب مفيد", "، .", nil},

		// -- Single word: whole-word matching --

		{"single word", "كتاب مفيد وكتاب آخر وكتاب", "كتاب", []string{"كتاب"}},
		{"no substring match", "الكتابة فن", "كتاب", nil},
		{"hamza variant", "إدارة المحتوى أساس النجاح", "ادارة", []string{"إدارة"}},
		{"teh marbuta variant", "المدرسه والمدرسة", "المدرسة", []string{"المدرسه"}},
		{"diacritics ignored", "كَتَبَ الطالبُ الدرسَ", "الطالب", []string{"الطالبُ"}},
		{"tatweel ignored", "محتـــوى ممتاز", "محتوى", []string{"محتـــوى"}},
		{"punctuation adjacent", "السيو، والسيو. السيو!", "السيو", []string{"السيو", "السيو"}},
		{"latin case folded", "تعلم SEO اليوم. seo مهم", "Seo", []string{"SEO", "seo"}},

		// -- Multi-word: positional sequence matching --

		{"phrase", "تحسين محركات البحث مهم. تحسين محركات البحث ضروري", "تحسين محركات البحث",
			[]string{"تحسين محركات البحث", "تحسين محركات البحث"}},
		{"phrase across punctuation", "تحسين، محركات البحث", "تحسين محركات البحث",
			[]string{"تحسين، محركات البحث"}},
		{"phrase across newline", "تحسين\nمحركات البحث", "تحسين محركات البحث",
			[]string{"تحسين\nمحركات البحث"}},
		{"phrase needs every word", "تحسين محركات الطائرات", "تحسين محركات البحث", nil},
		{"term extra spaces", "دليل شامل", "  دليل   شامل ", []string{"دليل شامل"}},
		{"non-overlapping", "جدا جدا جدا", "جدا جدا", []string{"جدا جدا"}},
		{"non-overlapping twice", "جدا جدا جدا جدا", "جدا جدا", []string{"جدا جدا", "جدا جدا"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FindAll(tt.content, tt.term)
			if !slices.Equal(texts(got), tt.want) {
				t.Errorf("FindAll(%q, %q) = %v, want %q", tt.content, tt.term, got, tt.want)
			}
			verifyOccurrences(t, tt.content, got)
			if c := Count(tt.content, tt.term); c != len(got) {
				t.Errorf("Count = %d, len(FindAll) = %d", c, len(got))
			}
			if Contains(tt.content, tt.term) != (len(got) > 0) {
				t.Errorf("Contains disagrees with FindAll")
			}
		})
	}
}

func TestFindAllOffsets(t *testing.T) {
	t.Parallel()
	content := "مقدمة: إدارة المحتوى، ثم إدارة المحتوى."
	got := FindAll(content, "ادارة المحتوي")
	if len(got) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(got))
	}
	first := strings.Index(content, "إدارة")
	if got[0].Start != first || got[0].End != first+len("إدارة المحتوى") {
		t.Errorf("first occurrence = %v, want [%d:%d]", got[0], first, first+len("إدارة المحتوى"))
	}
	second := strings.LastIndex(content, "إدارة")
	if got[1].Start != second {
		t.Errorf("second occurrence starts at %d, want %d", got[1].Start, second)
	}
}

func TestFindAllOversized(t *testing.T) {
	t.Parallel()
	big := strings.Repeat("كلمة ", maxInputBytes/5+1)
	if got := FindAll(big, "كلمة"); got != nil {
		t.Errorf("oversized content returned %d occurrences", len(got))
	}
}

// ---------------------------------------------------------------------------
// Index
// ---------------------------------------------------------------------------

func TestIndex(t *testing.T) {
	t.Parallel()
	idx := NewIndex("لذلك نبدأ. أيضاً نكمل، لذلك ننجح")
	if idx.Words() != 6 {
		t.Errorf("Words() = %d, want 6", idx.Words())
	}
	if got := idx.Count("لذلك"); got != 2 {
		t.Errorf("Count(لذلك) = %d, want 2", got)
	}
	if !idx.Contains("ايضا") {
		t.Error("Contains(ايضا) = false, want true")
	}
	if idx.ContainsTerms(Terms("بالتالي")) {
		t.Error("ContainsTerms(بالتالي) = true, want false")
	}
	if got := idx.CountTerms(Terms("نبدأ")); got != 1 {
		t.Errorf("CountTerms(نبدأ) = %d, want 1", got)
	}
}

func TestTerms(t *testing.T) {
	t.Parallel()
	got := Terms(" تحسينُ، محركاتِ  البحث ")
	want := []string{"تحسين", "محركات", "البحث"}
	if !slices.Equal(got, want) {
		t.Errorf("Terms = %q, want %q", got, want)
	}
	if Terms("...") != nil {
		t.Error("Terms of punctuation should be nil")
	}
}

// ---------------------------------------------------------------------------
// Replace
// ---------------------------------------------------------------------------

func TestReplace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		term    string
		repl    string
		n       int
		want    string
		count   int
	}{
		{"all", "أحمد وأحمد. أحمد!", "احمد", "محمد", -1, "محمد وأحمد. محمد!", 2},
		{"first only", "سيو سيو سيو", "سيو", "SEO", 1, "SEO سيو سيو", 1},
		{"zero", "سيو", "سيو", "SEO", 0, "سيو", 0},
		{"no match", "نص عادي", "كلمة", "x", -1, "نص عادي", 0},
		{"phrase", "تحسين  محركات البحث مهم", "تحسين محركات البحث", "السيو", -1, "السيو مهم", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, n := Replace(tt.content, tt.term, tt.repl, tt.n)
			if got != tt.want || n != tt.count {
				t.Errorf("Replace(%q, %q, %q, %d) = %q, %d; want %q, %d",
					tt.content, tt.term, tt.repl, tt.n, got, n, tt.want, tt.count)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Concurrent safety
// ---------------------------------------------------------------------------

func TestConcurrentSafety(t *testing.T) {
	idx := NewIndex("إدارة المحتوى الرقمي. إدارة المحتوى.")
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			if got := idx.Count("ادارة المحتوي"); got != 2 {
				t.Errorf("Count = %d, want 2", got)
			}
			FindAll("كتاب كتاب", "كتاب")
		})
	}
	wg.Wait()
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkFindAll(b *testing.B) {
	content := strings.Repeat("تحسين محركات البحث يساعد على الظهور في النتائج. ", 200)
	for b.Loop() {
		FindAll(content, "تحسين محركات البحث")
	}
}

func BenchmarkIndexContains(b *testing.B) {
	idx := NewIndex(strings.Repeat("تحسين محركات البحث يساعد على الظهور في النتائج. ", 200))
	for b.Loop() {
		idx.Contains("الظهور في النتائج")
	}
}

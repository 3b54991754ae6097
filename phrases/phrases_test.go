package phrases

import (
	"slices"
	"strings"
	"sync"
	"testing"
)

// verifyResult checks the invariants every Result must satisfy.
func verifyResult(t *testing.T, content string, res Result, minCount int) {
	t.Helper()
	phrases, reps := 0, 0
	for n, group := range res.Groups {
		for i, p := range group {
			if p.Count < minCount {
				t.Errorf("n=%d phrase %v has count below %d", n, p, minCount)
			}
			if p.N != n || len(strings.Fields(p.Key)) != n {
				t.Errorf("n=%d phrase %v has wrong length", n, p)
			}
			if content[p.Start:p.End] != p.Text {
				t.Errorf("phrase %v text does not match content[%d:%d]", p, p.Start, p.End)
			}
			if len(p.Spans) != p.Count || p.Spans[0] != (Span{p.Start, p.End}) {
				t.Errorf("phrase %v spans %v disagree with count and first occurrence", p, p.Spans)
			}
			for j := 1; j < len(p.Spans); j++ {
				if p.Spans[j].Start <= p.Spans[j-1].Start {
					t.Errorf("phrase %v spans not in content order: %v", p, p.Spans)
				}
			}
			if i > 0 && group[i-1].Count < p.Count {
				t.Errorf("n=%d group not sorted by count at %d", n, i)
			}
			phrases++
			reps += p.Count - 1
		}
	}
	if res.Stats.RepeatedPhrases != phrases || res.Stats.TotalRepetitions != reps {
		t.Errorf("stats %+v disagree with groups (%d phrases, %d repetitions)", res.Stats, phrases, reps)
	}
}

func keysOf(ps []Phrase) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Key
	}
	return out
}

// ---------------------------------------------------------------------------
// Extract
// ---------------------------------------------------------------------------

func TestExtractEmpty(t *testing.T) {
	t.Parallel()
	res := Extract("")
	for n := 2; n <= 8; n++ {
		group, ok := res.Groups[n]
		if !ok {
			t.Errorf("Groups[%d] missing", n)
		}
		if len(group) != 0 {
			t.Errorf("Groups[%d] = %v, want empty", n, group)
		}
	}
	if res.Stats != (Stats{}) {
		t.Errorf("Stats = %+v, want zero", res.Stats)
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()
	content := "تحسين محركات البحث مهم. تحسين محركات البحث ضروري."
	res := Extract(content)
	verifyResult(t, content, res, 2)

	if got, want := keysOf(res.Groups[2]), []string{"تحسين محركات", "محركات البحث"}; !slices.Equal(got, want) {
		t.Errorf("Groups[2] = %q, want %q", got, want)
	}
	if got, want := keysOf(res.Groups[3]), []string{"تحسين محركات البحث"}; !slices.Equal(got, want) {
		t.Errorf("Groups[3] = %q, want %q", got, want)
	}
	for n := 4; n <= 8; n++ {
		if len(res.Groups[n]) != 0 {
			t.Errorf("Groups[%d] = %v, want empty", n, res.Groups[n])
		}
	}

	want := Stats{TotalWords: 8, UniqueWords: 5, RepeatedPhrases: 3, TotalRepetitions: 3}
	if res.Stats != want {
		t.Errorf("Stats = %+v, want %+v", res.Stats, want)
	}
}

func TestExtractSurfaceText(t *testing.T) {
	t.Parallel()
	content := "إدارة المحتوى مهمة. ادارة المحتوي ضرورية"
	res := Extract(content)
	if len(res.Groups[2]) != 1 {
		t.Fatalf("Groups[2] = %v, want one phrase", res.Groups[2])
	}
	p := res.Groups[2][0]
	if p.Text != "إدارة المحتوى" || p.Key != "اداره المحتوي" || p.Count != 2 {
		t.Errorf("phrase = %+v", p)
	}
	if p.Start != 0 {
		t.Errorf("Start = %d, want 0", p.Start)
	}
}

func TestExtractSpansEveryOccurrence(t *testing.T) {
	t.Parallel()
	content := "تحسين SEO المواقع مهم. تحسين المواقع ضروري. تحسين المواقع سهل."
	res := Extract(content)
	verifyResult(t, content, res, defaultMinCount)
	if len(res.Groups[2]) != 1 {
		t.Fatalf("Groups[2] = %v, want one phrase", res.Groups[2])
	}
	p := res.Groups[2][0]
	if p.Key != "تحسين المواقع" || p.Count != 3 {
		t.Fatalf("phrase = %+v", p)
	}
	want := []string{"تحسين SEO المواقع", "تحسين المواقع", "تحسين المواقع"}
	for i, s := range p.Spans {
		if got := content[s.Start:s.End]; got != want[i] {
			t.Errorf("span %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestExtractOrdering(t *testing.T) {
	t.Parallel()
	content := "ربما أبدا. نعم لا. نعم لا. ربما أبدا. نعم لا"
	res := Extract(content)
	got := make([]string, len(res.Groups[2]))
	for i, p := range res.Groups[2] {
		got[i] = p.Text
	}
	// Count descending; equal counts keep first-occurrence order.
	want := []string{"نعم لا", "ربما أبدا", "أبدا. نعم"}
	if !slices.Equal(got, want) {
		t.Errorf("Groups[2] texts = %q, want %q", got, want)
	}
	verifyResult(t, content, res, 2)
}

func TestExtractIgnoresLatin(t *testing.T) {
	t.Parallel()
	content := "SEO دليل شامل، SEO دليل شامل"
	res := Extract(content)
	if got := keysOf(res.Groups[2]); !slices.Equal(got, []string{"دليل شامل"}) {
		t.Errorf("Groups[2] = %q", got)
	}
	if res.Stats.TotalWords != 4 {
		t.Errorf("TotalWords = %d, want 4", res.Stats.TotalWords)
	}
}

func TestExtractOverlapping(t *testing.T) {
	t.Parallel()
	res := Extract("جدا جدا جدا")
	if len(res.Groups[2]) != 1 || res.Groups[2][0].Count != 2 {
		t.Errorf("Groups[2] = %v, want جدا جدا x2", res.Groups[2])
	}
}

// ---------------------------------------------------------------------------
// ExtractWith
// ---------------------------------------------------------------------------

func TestExtractWithThreshold(t *testing.T) {
	t.Parallel()
	content := "المحتوى الجيد يجذب القراء. المحتوى الجيد يبني الثقة. القراء يحبون الثقة."
	strict := Extract(content)
	loose := ExtractWith(content, Options{MinCount: 1})
	verifyResult(t, content, loose, 1)
	for n := 2; n <= 8; n++ {
		if len(loose.Groups[n]) < len(strict.Groups[n]) {
			t.Errorf("n=%d: MinCount 1 gave %d phrases, MinCount 2 gave %d",
				n, len(loose.Groups[n]), len(strict.Groups[n]))
		}
	}
	if len(loose.Groups[2]) <= len(strict.Groups[2]) {
		t.Error("lowering the threshold should add unrepeated pairs")
	}
}

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Options
		want Options
	}{
		{Options{}, Options{MinN: 2, MaxN: 8, MinCount: 2}},
		{Options{MinN: 3, MaxN: 1}, Options{MinN: 3, MaxN: 3, MinCount: 2}},
		{Options{MaxN: 100}, Options{MinN: 2, MaxN: 16, MinCount: 2}},
		{Options{MinN: 1, MaxN: 1, MinCount: 5}, Options{MinN: 1, MaxN: 1, MinCount: 5}},
	}
	for _, tt := range tests {
		if got := tt.in.withDefaults(); got != tt.want {
			t.Errorf("%+v.withDefaults() = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestResultAll(t *testing.T) {
	t.Parallel()
	res := Extract("تحسين محركات البحث مهم. تحسين محركات البحث ضروري.")
	all := res.All()
	if len(all) != 3 || all[0].N != 3 {
		t.Errorf("All() = %v, want the 3-word phrase first", all)
	}
}

// ---------------------------------------------------------------------------
// Concurrent safety
// ---------------------------------------------------------------------------

func TestConcurrentSafety(t *testing.T) {
	content := strings.Repeat("في الواقع هذا مهم جدا. ", 10)
	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			Extract(content)
		})
	}
	wg.Wait()
}

// ---------------------------------------------------------------------------
// Benchmarks and fuzz
// ---------------------------------------------------------------------------

func BenchmarkExtract(b *testing.B) {
	content := strings.Repeat("يساعد تحسين محركات البحث المواقع على الظهور في النتائج الأولى. ", 100)
	for b.Loop() {
		Extract(content)
	}
}

func FuzzExtract(f *testing.F) {
	f.Add("تحسين محركات البحث مهم. تحسين محركات البحث ضروري.")
	f.Add("جدا جدا جدا")
	f.Add("ما-قبل ما-قبل")
	f.Add("")
	f.Add("\xff\xfe")
	f.Fuzz(func(t *testing.T, s string) {
		verifyResult(t, s, Extract(s), 2)
	})
}

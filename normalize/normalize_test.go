package normalize

import (
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Normalize: table-driven tests
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},

		// -- Letter variants --

		{"alef hamza above", "أحمد", "احمد"},
		{"alef hamza below", "إسلام", "اسلام"},
		{"alef madda", "آخر", "اخر"},
		{"alef wasla", "ٱلكتاب", "الكتاب"},
		{"waw hamza", "مؤسسة", "موسسه"},
		{"yeh hamza", "أسئلة", "اسيله"},
		{"alef maksura", "مستشفى", "مستشفي"},
		{"teh marbuta", "مدرسة", "مدرسه"},

		// -- Tashkeel and tatweel --

		{"harakat removed", "كَتَبَ", "كتب"},
		{"shadda and tanween removed", "محمّدٌ", "محمد"},
		{"tatweel removed", "كتــــاب", "كتاب"},

		// -- Case --

		{"latin lowered", "SEO Guide", "seo guide"},
		{"mixed script", "دليل SEO", "دليل seo"},

		// -- Left in place --

		{"punctuation kept", "مرحباً، يا عالم!", "مرحبا، يا عالم!"},
		{"latin accents kept", "Café", "café"},
		{"whitespace kept", "  نص  ", "  نص  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// NormalizeForAnalysis
// ---------------------------------------------------------------------------

func TestNormalizeForAnalysis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"punctuation to space", "أولاً، ثانياً؛ ثالثاً؟", "اولا ثانيا ثالثا"},
		{"latin removed", "دليل SEO الشامل", "دليل الشامل"},
		{"ascii digits removed", "عام 2024", "عام"},
		{"arabic-indic digits kept", "عام ٢٠٢٤", "عام ٢٠٢٤"},
		{"whitespace collapsed and trimmed", "\n\t كلمة   أخرى \n", "كلمه اخري"},
		{"no arabic content", "hello, world!", ""},
		{"markdown markers removed", "## عنوان **مهم**", "عنوان مهم"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeForAnalysis(tt.input); got != tt.want {
				t.Errorf("NormalizeForAnalysis(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// NormalizeWord / Equal
// ---------------------------------------------------------------------------

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"  إدارة ", "اداره"},
		{"\tالمُحتوى\n", "المحتوي"},
	}
	for _, tt := range tests {
		if got := NormalizeWord(tt.input); got != tt.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Idempotency and limits
// ---------------------------------------------------------------------------

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"أَهْلاً وَسَهْلاً بِكُمْ فِي مَوْقِعِنَا",
		"İstanbul ΑΣ Straße",
		"مؤسسة إدارة المحتوى — 2024",
		"ﻻ",
	}
	for _, s := range inputs {
		first := Normalize(s)
		if second := Normalize(first); second != first {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, first, second)
		}
		firstA := NormalizeForAnalysis(s)
		if secondA := NormalizeForAnalysis(firstA); secondA != firstA {
			t.Errorf("NormalizeForAnalysis not idempotent for %q: %q then %q", s, firstA, secondA)
		}
	}
}

func TestNormalizeInvalidUTF8(t *testing.T) {
	t.Parallel()
	if got := Normalize("ك\xffتاب"); got != "كتاب" {
		t.Errorf("Normalize with invalid byte = %q, want %q", got, "كتاب")
	}
}

func TestNormalizeMaxInput(t *testing.T) {
	t.Parallel()
	big := strings.Repeat("أ", maxInputBytes/2+1)
	if got := Normalize(big); got != big {
		t.Error("oversized input should be returned unchanged")
	}
	if got := NormalizeForAnalysis(big); got != big {
		t.Error("oversized input should be returned unchanged")
	}
}

// ---------------------------------------------------------------------------
// Concurrent safety
// ---------------------------------------------------------------------------

func TestConcurrentSafety(t *testing.T) {
	input := "إدارة المحتوى الرقمي في المؤسسات الكبيرة"
	want := Normalize(input)
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			if got := Normalize(input); got != want {
				t.Errorf("concurrent Normalize = %q, want %q", got, want)
			}
			NormalizeForAnalysis(input)
		})
	}
	wg.Wait()
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkNormalize(b *testing.B) {
	s := "أَهْلاً وَسَهْلاً بِكُمْ فِي مَوْقِعِنَا الإلكتروني"
	for b.Loop() {
		Normalize(s)
	}
}

func BenchmarkNormalizeForAnalysisLarge(b *testing.B) {
	s := strings.Repeat("إدارة المحتوى، تحسين محركات البحث. ", 1000)
	for b.Loop() {
		NormalizeForAnalysis(s)
	}
}

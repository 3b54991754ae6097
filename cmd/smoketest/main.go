// Command smoketest runs the full analysis over a directory of articles and
// checks the offset invariants on every result: word tokens reconstruct the
// input, and every reported span satisfies content[Start:End] == Text.
//
//	go run ./cmd/smoketest <directory>
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/civanmustafa/Sembrand-editor/document"
	"github.com/civanmustafa/Sembrand-editor/seo"
	"github.com/civanmustafa/Sembrand-editor/tokenizer"
)

const (
	maxWorkers   = 4
	expectedArgs = 2
	outlierRatio = 3 // sentences per paragraph, as a multiple of the median
)

// sampleSecondary is the secondary keyword used to exercise sub-keyword analysis.
const sampleSecondary = "محركات البحث"

// Stats aggregates the checks over all files.
type Stats struct {
	mu               sync.Mutex
	filesScanned     int
	totalBytes       int64
	reconOK          int
	reconFail        int
	spanFail         int
	spansChecked     int
	sentenceOutliers int
	violations       int
	tokenTypeCounts  map[tokenizer.TokenType]int
	fileRatios       []fileRatio
}

type fileRatio struct {
	path       string
	sentences  int
	paragraphs int
	ratio      float64
}

// fileState is the outcome of checking one article.
type fileState struct {
	path        string
	bytes       int
	tokenCounts map[tokenizer.TokenType]int
	reconFailed bool
	badSpans    []string
	spans       int
	sentences   int
	paragraphs  int
	violations  int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	var paths []string
	err := filepath.WalkDir(os.Args[1], func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isArticle(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(paths))
	start := time.Now()
	stats := &Stats{tokenTypeCounts: make(map[tokenizer.TokenType]int)}

	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for _, path := range paths {
		g.Go(func() error {
			content, err := readArticle(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
				return nil
			}
			mergeFileState(checkFile(path, content), stats)
			return nil
		})
	}
	_ = g.Wait()

	flagSentenceOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
	if stats.reconFail > 0 || stats.spanFail > 0 {
		os.Exit(1)
	}
}

func isArticle(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".txt", ".html", ".htm":
		return true
	}
	return false
}

// readArticle reads path, reducing HTML pages to article text.
func readArticle(path string) (string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if ext := strings.ToLower(filepath.Ext(path)); ext == ".html" || ext == ".htm" {
		return document.FromHTML(f)
	}
	b, err := io.ReadAll(f)
	return string(b), err
}

// checkFile analyzes one article and checks every span it reports.
func checkFile(path, content string) *fileState {
	fs := &fileState{
		path:        path,
		bytes:       len(content),
		tokenCounts: make(map[tokenizer.TokenType]int),
	}

	var sb strings.Builder
	sb.Grow(len(content))
	for _, tok := range tokenizer.WordTokens(content) {
		fs.tokenCounts[tok.Type]++
		sb.WriteString(tok.Text)
	}
	if sb.String() != content {
		fs.reconFailed = true
		pos, got, want := firstDivergence(content, sb.String())
		fmt.Fprintf(os.Stderr, "RECON_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
			path, pos, got, want)
	}

	doc := document.Parse(content)
	fs.sentences = len(tokenizer.SentenceTokens(content))
	fs.paragraphs = max(len(doc.Paragraphs()), 1)

	rep, err := seo.Analyze(content, seo.Params{Primary: firstHeadingWord(doc), Secondary: []string{sampleSecondary}})
	if err != nil {
		fs.badSpans = append(fs.badSpans, err.Error())
		return fs
	}
	fs.violations = rep.Structure.Summary.Violation

	check := func(kind string, start, end int, text string) {
		fs.spans++
		if start < 0 || end > len(content) || start > end || content[start:end] != text {
			fs.badSpans = append(fs.badSpans, fmt.Sprintf("%s [%d:%d] %q", kind, start, end, text))
		}
	}
	for _, o := range rep.Primary.Occurrences {
		check("primary", o.Start, o.End, o.Text)
	}
	for _, s := range rep.Secondary {
		for _, o := range s.Occurrences {
			check("secondary", o.Start, o.End, o.Text)
		}
	}
	for _, p := range rep.Phrases.All() {
		check("phrase", p.Start, p.End, p.Text)
		for _, s := range p.Spans {
			if s.Start < 0 || s.End > len(content) || s.Start >= s.End {
				fs.badSpans = append(fs.badSpans, fmt.Sprintf("phrase span [%d:%d] of %q", s.Start, s.End, p.Key))
			}
		}
	}
	for _, c := range rep.Structure.Criteria {
		for _, s := range c.Violations {
			check(string(c.ID), s.Start, s.End, s.Text)
		}
	}
	for _, h := range rep.Highlights {
		check("highlight", h.Start, h.End, h.Text)
	}
	for _, b := range fs.badSpans {
		fmt.Fprintf(os.Stderr, "SPAN_FAIL: %s: %s\n", path, b)
	}
	return fs
}

// firstHeadingWord picks a primary keyword for the run: the first word of
// the first heading, or of the content.
func firstHeadingWord(doc *document.Document) string {
	for _, level := range []int{1, 2, 3} {
		if hs := doc.Headings(level); len(hs) > 0 {
			if ws := tokenizer.Words(hs[0].Text); len(ws) > 0 {
				return ws[0]
			}
		}
	}
	if ws := tokenizer.Words(doc.Content); len(ws) > 0 {
		return ws[0]
	}
	return ""
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += int64(fs.bytes)
	if fs.reconFailed {
		stats.reconFail++
	} else {
		stats.reconOK++
	}
	if len(fs.badSpans) > 0 {
		stats.spanFail++
	}
	stats.spansChecked += fs.spans
	stats.violations += fs.violations
	for tt, n := range fs.tokenCounts {
		stats.tokenTypeCounts[tt] += n
	}
	stats.fileRatios = append(stats.fileRatios, fileRatio{
		path:       fs.path,
		sentences:  fs.sentences,
		paragraphs: fs.paragraphs,
		ratio:      float64(fs.sentences) / float64(fs.paragraphs),
	})
}

// flagSentenceOutliers flags files whose sentence/paragraph ratio exceeds
// outlierRatio times the median, usually a sign of missing paragraph breaks.
func flagSentenceOutliers(stats *Stats) {
	ratios := make([]float64, len(stats.fileRatios))
	for i, fr := range stats.fileRatios {
		ratios[i] = fr.ratio
	}
	med := median(ratios)

	for _, fr := range stats.fileRatios {
		if med > 0 && fr.ratio > outlierRatio*med {
			stats.sentenceOutliers++
			fmt.Fprintf(os.Stderr, "SENTENCE_OUTLIER: %s: %d sentences / %d paragraphs (ratio %.2f, median %.2f)\n",
				fr.path, fr.sentences, fr.paragraphs, fr.ratio, med)
		}
	}
}

// firstDivergence finds the byte position where two strings first differ
// and the differing bytes from each.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Reconstruction OK:       %d\n", stats.reconOK)
	fmt.Printf("Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Printf("Spans checked:           %d\n", stats.spansChecked)
	fmt.Printf("Files with bad spans:    %d\n", stats.spanFail)
	fmt.Printf("Sentence outliers:       %d\n", stats.sentenceOutliers)
	fmt.Printf("Structure violations:    %d\n", stats.violations)
	fmt.Println()

	total := 0
	for _, n := range stats.tokenTypeCounts {
		total += n
	}
	fmt.Println("Token type distribution:")
	for _, tt := range []tokenizer.TokenType{tokenizer.Word, tokenizer.Number, tokenizer.Punctuation, tokenizer.Space, tokenizer.Symbol} {
		n := stats.tokenTypeCounts[tt]
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		fmt.Printf("  %-15s %d  (%.1f%%)\n", tt.String()+":", n, pct)
	}
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/civanmustafa/Sembrand-editor/internal/config"
	"github.com/civanmustafa/Sembrand-editor/phrases"
)

const article = "## مقدمة عن القهوة\n\nالقهوة العربية مشروب أصيل. القهوة العربية تقدم للضيوف.\n\n## الخلاصة\n\nفي النهاية القهوة العربية رمز الكرم."

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig() *config.Config {
	return &config.Config{
		Primary:     "القهوة العربية",
		Format:      config.FormatJSON,
		Concurrency: 2,
	}
}

type decoded struct {
	Name   string `json:"name"`
	Report struct {
		TotalWords int `json:"total_words"`
		Primary    struct {
			Count int `json:"current_count"`
		} `json:"primary"`
	} `json:"report"`
}

// ---------------------------------------------------------------------------
// Root
// ---------------------------------------------------------------------------

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	want := map[string]bool{"analyze": false, "phrases": false, "replace": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"verbose", "config"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q missing", flag)
		}
	}
}

// ---------------------------------------------------------------------------
// Inputs
// ---------------------------------------------------------------------------

func TestInputNames(t *testing.T) {
	t.Parallel()

	if got := inputNames(nil); len(got) != 1 || got[0] != stdinName {
		t.Errorf("inputNames(nil) = %v, want [-]", got)
	}
	args := []string{"a.md", "b.md"}
	if got := inputNames(args); len(got) != 2 || got[1] != "b.md" {
		t.Errorf("inputNames(%v) = %v", args, got)
	}
}

func TestReadInput(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	tests := []struct {
		name  string
		input string
		stdin string
		html  bool
		want  string
	}{
		{"file", writeFile(t, dir, "a.md", "نص المقال"), "", false, "نص المقال"},
		{"stdin", stdinName, "من المدخل", false, "من المدخل"},
		{"html", writeFile(t, dir, "a.html", "<h2>عنوان</h2><p>فقرة</p>"), "", true, "## عنوان\n\nفقرة"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := readInput(tt.input, strings.NewReader(tt.stdin), tt.html)
			if err != nil {
				t.Fatalf("readInput: %v", err)
			}
			if got != tt.want {
				t.Errorf("readInput = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadInputMissing(t *testing.T) {
	t.Parallel()
	_, err := readInput(filepath.Join(t.TempDir(), "missing.md"), nil, false)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readInput(missing) error = %v, want ErrNotExist", err)
	}
}

// ---------------------------------------------------------------------------
// Analyze
// ---------------------------------------------------------------------------

func TestRunAnalyzeBatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	names := []string{
		writeFile(t, dir, "one.md", article),
		writeFile(t, dir, "two.md", "نص قصير"),
		writeFile(t, dir, "three.md", article),
	}

	var out bytes.Buffer
	if err := runAnalyze(context.Background(), zap.NewNop(), testConfig(), names, nil, &out); err != nil {
		t.Fatalf("runAnalyze: %v", err)
	}

	var got []decoded
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != len(names) {
		t.Fatalf("got %d results, want %d", len(got), len(names))
	}
	for i, r := range got {
		if r.Name != names[i] {
			t.Errorf("result %d is %q, want %q", i, r.Name, names[i])
		}
	}
	if got[0].Report.Primary.Count != 3 || got[1].Report.Primary.Count != 0 {
		t.Errorf("primary counts = %d, %d; want 3, 0", got[0].Report.Primary.Count, got[1].Report.Primary.Count)
	}
	if got[1].Report.TotalWords != 2 {
		t.Errorf("two.md words = %d, want 2", got[1].Report.TotalWords)
	}
}

func TestRunAnalyzeStdinMarkdown(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Format = config.FormatMarkdown

	var out bytes.Buffer
	err := runAnalyze(context.Background(), zap.NewNop(), cfg, []string{stdinName}, strings.NewReader(article), &out)
	if err != nil {
		t.Fatalf("runAnalyze: %v", err)
	}
	if !strings.Contains(out.String(), "# تقرير السيو: -") {
		t.Errorf("markdown report missing title:\n%s", out.String())
	}
}

func TestRunAnalyzeErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	good := writeFile(t, dir, "good.md", article)

	tests := []struct {
		name  string
		cfg   func(*config.Config)
		names []string
	}{
		{"missing input", nil, []string{good, filepath.Join(dir, "missing.md")}},
		{"missing lexicon", func(c *config.Config) { c.Lexicon = filepath.Join(dir, "none.yaml") }, []string{good}},
		{"unknown format", func(c *config.Config) { c.Format = "xml" }, []string{good}},
		{"too many secondary", func(c *config.Config) { c.Secondary = []string{"أ", "ب", "ت", "ث", "ج"} }, []string{good}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			var out bytes.Buffer
			if err := runAnalyze(context.Background(), zap.NewNop(), cfg, tt.names, nil, &out); err == nil {
				t.Error("runAnalyze succeeded, want error")
			}
		})
	}
}

func TestRunAnalyzeCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := writeFile(t, t.TempDir(), "a.md", article)
	err := runAnalyze(ctx, zap.NewNop(), testConfig(), []string{path}, nil, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("runAnalyze error = %v, want context.Canceled", err)
	}
}

func TestAnalyzeCmd(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "format: markdown\nconcurrency: 1\n")
	input := writeFile(t, dir, "article.md", article)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"analyze", "--config", cfgPath, "-p", "القهوة العربية", input})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "## الكلمات المفتاحية") {
		t.Errorf("config file format not applied:\n%s", out.String())
	}
}

func TestAnalyzeCmdFlagOverridesConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "format: markdown\n")
	input := writeFile(t, dir, "article.md", article)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"analyze", "-c", cfgPath, "-f", "json", input})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	var got []decoded
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Errorf("flag did not override config format: %v", err)
	}
}

func TestAnalyzeCmdMissingConfig(t *testing.T) {
	t.Parallel()
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"analyze", "--config", filepath.Join(t.TempDir(), "nope.yaml")})
	err := cmd.Execute()
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("execute error = %v, want ErrConfigNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// Phrases
// ---------------------------------------------------------------------------

func TestRunPhrases(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := runPhrases(zap.NewNop(), testConfig(), phrases.Options{}, stdinName, strings.NewReader(article), &out)
	if err != nil {
		t.Fatalf("runPhrases: %v", err)
	}
	var got struct {
		Name    string         `json:"name"`
		Phrases phrases.Result `json:"phrases"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	found := false
	for _, p := range got.Phrases.All() {
		if p.Text == "القهوة العربية" && p.Count == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("phrase القهوة العربية x3 not reported: %+v", got.Phrases.All())
	}
}

func TestPhrasesCmd(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "format: json\n")
	input := writeFile(t, dir, "article.md", article)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"phrases", "-c", cfgPath, "-f", "markdown", "--min-count", "3", input})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "القهوة العربية") {
		t.Errorf("phrase missing from output:\n%s", out.String())
	}
}

// ---------------------------------------------------------------------------
// Replace
// ---------------------------------------------------------------------------

func TestRunReplace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		find    string
		with    string
		all     bool
		want    string
		count   string
	}{
		{"first only", "قهوة ثم قهوة", "قهوة", "شاي", false, "شاي ثم قهوة", "replaced 1 occurrence(s)\n"},
		{"all", "قهوة ثم قهوة", "قهوة", "شاي", true, "شاي ثم شاي", "replaced 2 occurrence(s)\n"},
		{"variant letters", "إسلام", "اسلام", "الإسلام", false, "الإسلام", "replaced 1 occurrence(s)\n"},
		{"no match", "نص", "قهوة", "شاي", true, "نص", "replaced 0 occurrence(s)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out, errOut bytes.Buffer
			if err := runReplace(zap.NewNop(), tt.content, tt.find, tt.with, tt.all, &out, &errOut); err != nil {
				t.Fatalf("runReplace: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
			if errOut.String() != tt.count {
				t.Errorf("stderr = %q, want %q", errOut.String(), tt.count)
			}
		})
	}
}

func TestRunReplaceEmptyFind(t *testing.T) {
	t.Parallel()
	if err := runReplace(zap.NewNop(), "نص", "", "x", true, &bytes.Buffer{}, &bytes.Buffer{}); !errors.Is(err, errNoFind) {
		t.Errorf("runReplace error = %v, want errNoFind", err)
	}
}

func TestReplaceCmdStdin(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("القهوة العربية والقهوة"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"replace", "--find", "القهوة العربية", "--with", "البن"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.String() != "البن والقهوة" {
		t.Errorf("output = %q", out.String())
	}
}

func TestReplaceCmdHTMLFromConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "html: true\n")
	input := writeFile(t, dir, "page.html", "<h2>القهوة</h2><p>القهوة العربية <b>أصيلة</b>.</p>")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"replace", "-c", cfgPath, "--find", "القهوة العربية", "--with", "البن", input})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "## القهوة\n\nالبن أصيلة."; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if errOut.String() != "replaced 1 occurrence(s)\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestReplaceCmdMissingConfig(t *testing.T) {
	t.Parallel()
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("نص"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"replace", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "--find", "نص"})
	if err := cmd.Execute(); !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("execute error = %v, want ErrConfigNotFound", err)
	}
}


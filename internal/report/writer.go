// Package report renders analysis results for the arseo command.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/civanmustafa/Sembrand-editor/phrases"
	"github.com/civanmustafa/Sembrand-editor/seo"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Result is the analysis of one input document.
type Result struct {
	Name   string     `json:"name"` // file path, or "-" for stdin
	Report seo.Report `json:"report"`
}

// Writer outputs reports in one format.
type Writer interface {
	// Write outputs the analyses of a batch of documents.
	Write(results []Result) (int, error)

	// WritePhrases outputs the repeated phrases of one document.
	WritePhrases(name string, r phrases.Result) (int, error)
}

// New returns the Writer for format ("json" or "markdown").
func New(format string, output io.Writer) (Writer, error) {
	switch format {
	case "json":
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case "markdown":
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// baseWriter holds the output destination shared by the writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

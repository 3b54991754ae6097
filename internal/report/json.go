package report

import (
	"encoding/json"
	"io"

	"github.com/civanmustafa/Sembrand-editor/phrases"
)

// JSONWriter outputs reports as JSON.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables two-space indented output.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the results as one JSON array.
func (w *JSONWriter) Write(results []Result) (int, error) {
	if results == nil {
		results = []Result{}
	}
	return w.writeJSON(results)
}

// WritePhrases outputs the phrase result wrapped with the document name.
func (w *JSONWriter) WritePhrases(name string, r phrases.Result) (int, error) {
	return w.writeJSON(struct {
		Name    string         `json:"name"`
		Phrases phrases.Result `json:"phrases"`
	}{name, r})
}

func (w *JSONWriter) writeJSON(v any) (int, error) {
	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}

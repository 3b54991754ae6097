package structure

import (
	"fmt"

	"github.com/civanmustafa/Sembrand-editor/status"
	"github.com/civanmustafa/Sembrand-editor/validate"
)

// punctCloseIssues is the largest punctuation issue count reported as close.
const punctCloseIssues = 3

func checkDoubleSpaces(f *facts) Criterion {
	issues := f.punct.Filter(validate.Spacing)
	c := Criterion{
		ID:         DoubleSpaces,
		Status:     status.Bool(len(issues) == 0),
		Required:   "فراغ واحد بين الكلمات",
		Current:    "لا توجد فراغات مزدوجة",
		Violations: issueSpans(issues),
	}
	if len(issues) > 0 {
		c.Current = "يوجد فراغات مزدوجة"
	}
	return c
}

func checkPunctuation(f *facts) Criterion {
	var issues []validate.Issue
	for _, is := range f.punct.Issues {
		if is.Type != validate.Spacing {
			issues = append(issues, is)
		}
	}
	n := len(issues)
	st := status.Violation
	switch {
	case n == 0:
		st = status.Achieved
	case n <= punctCloseIssues:
		st = status.Close
	}
	return Criterion{
		ID:         Punctuation,
		Status:     st,
		Required:   "لا فراغ قبل العلامات، فراغ بعد الفاصلة",
		Current:    fmt.Sprintf("%d أخطاء محتملة", n),
		Violations: issueSpans(issues),
	}
}

func issueSpans(issues []validate.Issue) []Span {
	if len(issues) == 0 {
		return nil
	}
	spans := make([]Span, len(issues))
	for i, is := range issues {
		spans[i] = Span{Text: is.Text, Start: is.Start, End: is.End, Note: is.Message}
	}
	return spans
}

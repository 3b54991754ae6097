package normalize

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/civanmustafa/Sembrand-editor/internal/arcase"
)

// Transformers carry state between calls, so each goroutine borrows its own
// chain from the pool.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD, // split hamza and madda off their carrier letters
			runes.Remove(runes.Predicate(arcase.IsDiacritic)),
			cases.Lower(language.Und),
			norm.NFC,
			runes.Map(arcase.Fold),
		)
	},
}

// fold runs s through a pooled normalization chain.
// s must be valid UTF-8.
func fold(s string) string {
	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

//go:build ignore

// checklexicon audits data/lexicon.yaml. Run from the project root:
//
//	go run scripts/checklexicon.go
//
// It reports entries that normalize to the same string within a list
// (only the first spelling is kept), entries that contain another entry
// of the same list, entries shared between lists, and entries with no
// Arabic word left after normalization. The exit status is 1 when any
// entry normalizes to nothing or when a counted list (transitions,
// interactive) holds an entry inside another.
package main

import (
	"log"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/civanmustafa/Sembrand-editor/normalize"
)

const lexiconPath = "data/lexicon.yaml"

// counted lists have every match tallied, so nesting inflates the result.
var counted = map[string]bool{"transitions": true, "interactive": true}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[checklexicon] ")

	raw, err := os.ReadFile(lexiconPath)
	if err != nil {
		log.Fatalf("cannot read lexicon: %v", err)
	}
	var lists map[string][]string
	if err := yaml.Unmarshal(raw, &lists); err != nil {
		log.Fatalf("cannot decode lexicon: %v", err)
	}

	names := make([]string, 0, len(lists))
	for name := range lists {
		names = append(names, name)
	}
	sort.Strings(names)

	empty, nested := 0, 0
	owners := make(map[string][]string) // normalized key -> lists containing it
	for _, name := range names {
		seen := make(map[string]string, len(lists[name]))
		for _, entry := range lists[name] {
			key := normalize.NormalizeForAnalysis(entry)
			if key == "" {
				log.Printf("%s: %q has no words after normalization", name, entry)
				empty++
				continue
			}
			if first, ok := seen[key]; ok {
				log.Printf("%s: %q duplicates %q", name, entry, first)
				continue
			}
			seen[key] = entry
			owners[key] = append(owners[key], name)
		}
		log.Printf("%s: %d entries, %d distinct", name, len(lists[name]), len(seen))

		for outer, oe := range seen {
			for inner, ie := range seen {
				if outer != inner && strings.Contains(outer, inner) {
					log.Printf("%s: %q contains %q", name, oe, ie)
					if counted[name] {
						nested++
					}
				}
			}
		}
	}

	shared := make([]string, 0)
	for key, ls := range owners {
		if len(ls) > 1 {
			shared = append(shared, key+" ("+strings.Join(ls, ", ")+")")
		}
	}
	sort.Strings(shared)
	for _, s := range shared {
		log.Printf("shared: %s", s)
	}

	if empty > 0 || nested > 0 {
		os.Exit(1)
	}
}

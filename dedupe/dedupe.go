// Package dedupe removes documents from an index whose distinct word sets
// exactly duplicate an earlier document's.
package dedupe

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// Engine is the subset of qdex.Engine's contract the duplicate detector
// needs. It depends on this narrow interface, not *qdex.Engine directly,
// so it never reaches past the index's public operations.
type Engine interface {
	Iter() []int
	WordFrequencies(id int) map[string]float64
	RemoveDocument(id int)
}

// Remove scans e's live documents in ascending id order, keeping the first
// document to exhibit each distinct word set and removing every later one
// that repeats a word set already seen. It writes one
// "Found duplicate document id N" line to out per document removed, in the
// order removed (ascending id).
func Remove(e Engine, out io.Writer) {
	seen := make(map[string]struct{})
	var duplicates []int

	for _, id := range e.Iter() {
		key := wordSetKey(e.WordFrequencies(id))
		if _, ok := seen[key]; ok {
			duplicates = append(duplicates, id)
			continue
		}
		seen[key] = struct{}{}
	}

	slog.Debug("qdex/dedupe: pass complete", slog.Int("duplicates", len(duplicates)))

	for _, id := range duplicates {
		fmt.Fprintf(out, "Found duplicate document id %d\n", id)
		e.RemoveDocument(id)
	}
}

// wordSetKey canonicalizes a document's distinct words (term frequency
// discarded) into a sortable, comparable string so two documents with the
// same word set produce equal keys regardless of map iteration order.
// Words can't contain '\n' (control bytes are rejected at AddDocument
// time), so it's a safe join separator.
func wordSetKey(freqs map[string]float64) string {
	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}
	sort.Strings(words)
	return strings.Join(words, "\n")
}

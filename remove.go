package qdex

import (
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// RemoveDocument removes id from the index, run sequentially. It is a
// no-op if id does not exist.
func (e *Engine) RemoveDocument(id int) {
	e.removeDocument(Sequential, id)
}

// RemoveDocumentPolicy is RemoveDocument with an explicit execution
// policy.
func (e *Engine) RemoveDocumentPolicy(policy Policy, id int) {
	e.removeDocument(policy, id)
}

func (e *Engine) removeDocument(policy Policy, id int) {
	words, ok := e.d2w[id]
	if !ok {
		return
	}

	wordList := make([]string, 0, len(words))
	for w := range words {
		wordList = append(wordList, w)
	}

	erase := func(w string) { delete(e.w2d[w], id) }

	if policy == Parallel {
		// Each goroutine deletes from a distinct inner map (one per
		// word); the outer map e.w2d is only read here, never written,
		// so concurrent access to it is safe.
		var g errgroup.Group
		for _, w := range wordList {
			w := w
			g.Go(func() error {
				erase(w)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, w := range wordList {
			erase(w)
		}
	}

	delete(e.d2w, id)
	delete(e.docs, id)
	e.ids.Remove(uint32(id))

	slog.Debug("qdex: document removed", slog.Int("id", id))
}

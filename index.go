// Package qdex implements an in-memory, concurrency-aware full-text search
// index.
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS A TWO-SIDED WORD/DOCUMENT INDEX?
// ═══════════════════════════════════════════════════════════════════════════════
//
// Every document added to an Engine is tokenized into words, and each word
// that survives the stop-word filter gets a term frequency: 1/N, where N is
// the number of non-stop words in that document. Two maps are kept in sync:
//
//	W2D: word      -> {document id -> term frequency}
//	D2W: document id -> {word -> term frequency}
//
// W2D answers "which documents contain this word, and how strongly" --
// the question FindTopDocuments asks, once per query word. D2W answers the
// reverse question -- "what are this document's words" -- which is what
// WordFrequencies, RemoveDocument and the duplicate detector all need.
// Keeping both directions means neither operation has to scan the whole
// index to answer its question.
//
// EXAMPLE: AddDocument(1, "a cat sat on a mat", ACTUAL, []int{5}) with stop
// words {"a", "on"} tokenizes to [cat, sat, mat], each getting tf = 1/3:
//
//	W2D["cat"][1] = 1/3     D2W[1] = {cat: 1/3, sat: 1/3, mat: 1/3}
//	W2D["sat"][1] = 1/3
//	W2D["mat"][1] = 1/3
//
// ═══════════════════════════════════════════════════════════════════════════════
package qdex

import (
	"log/slog"

	"github.com/RoaringBitmap/roaring"
)

// docMeta is the per-document bookkeeping kept outside the word-frequency
// maps: status and rating, looked up by every Filter invocation.
type docMeta struct {
	status Status
	rating int
}

// Engine is a full-text index over a fixed set of stop words. The zero
// value is not usable; construct one with New or NewFromWords.
//
// Engine has no internal locking. Callers that mutate it (AddDocument,
// RemoveDocument) from one goroutine while other goroutines call any
// method concurrently must provide their own synchronization; concurrent
// read-only calls (FindTopDocuments, MatchDocument, WordFrequencies,
// DocumentCount, Iter) are safe with each other with no mutation in
// flight.
type Engine struct {
	stop stopWordSet

	w2d  map[string]map[int]float64
	d2w  map[int]map[string]float64
	docs map[int]docMeta
	ids  *roaring.Bitmap
}

// New builds an Engine whose stop words are the space-separated tokens of
// stopWords. It fails InvalidArgument if stopWords contains a byte below
// 0x20.
func New(stopWords string) (*Engine, error) {
	if !isValidText(stopWords) {
		return nil, invalidArgument("stop-word text contains a control byte")
	}
	return newEngine(splitWords(stopWords)), nil
}

// NewFromWords builds an Engine from an already-tokenized stop-word list.
// It fails InvalidArgument if any word contains a byte below 0x20.
func NewFromWords(stopWords []string) (*Engine, error) {
	for _, w := range stopWords {
		if !isValidText(w) {
			return nil, invalidArgument("stop word contains a control byte")
		}
	}
	return newEngine(stopWords), nil
}

func newEngine(stopWords []string) *Engine {
	return &Engine{
		stop: newStopWordSet(stopWords),
		w2d:  make(map[string]map[int]float64),
		d2w:  make(map[int]map[string]float64),
		docs: make(map[int]docMeta),
		ids:  roaring.New(),
	}
}

// AddDocument indexes text under id with the given status and ratings. It
// fails InvalidArgument if id is negative, if id already exists, if text
// contains a byte below 0x20, or if a word of text (after tokenization)
// equals "-" or begins with "-".
func (e *Engine) AddDocument(id int, text string, status Status, ratings []int) error {
	if id < 0 {
		return invalidArgument("document id must not be negative")
	}
	if e.ids.Contains(uint32(id)) {
		return invalidArgument("document id already exists")
	}
	if !isValidText(text) {
		return invalidArgument("document text contains a control byte")
	}

	words := splitWords(text)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if w[0] == '-' {
			return invalidArgument("document word must not be or begin with '-'")
		}
		if e.stop.contains(w) {
			continue
		}
		kept = append(kept, w)
	}

	wordFreq := make(map[string]float64, len(kept))
	if len(kept) > 0 {
		tf := 1.0 / float64(len(kept))
		for _, w := range kept {
			wordFreq[w] += tf
		}
	}

	for w, freq := range wordFreq {
		postings := e.w2d[w]
		if postings == nil {
			postings = make(map[int]float64)
			e.w2d[w] = postings
		}
		postings[id] = freq
	}
	e.d2w[id] = wordFreq
	e.docs[id] = docMeta{status: status, rating: averageRating(ratings)}
	e.ids.Add(uint32(id))

	slog.Debug("qdex: document added", slog.Int("id", id), slog.Int("words", len(kept)), slog.String("status", status.String()))
	return nil
}

// averageRating returns the truncating integer mean of ratings, or 0 for
// an empty slice.
func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// DocumentCount returns the number of currently live (non-removed)
// documents.
func (e *Engine) DocumentCount() int {
	return len(e.docs)
}

// Iter returns the ids of all currently live documents in ascending
// order.
func (e *Engine) Iter() []int {
	ids := make([]int, 0, e.ids.GetCardinality())
	it := e.ids.Iterator()
	for it.HasNext() {
		ids = append(ids, int(it.Next()))
	}
	return ids
}

// WordFrequencies returns a copy of the term-frequency map for id, or an
// empty map if id does not exist.
func (e *Engine) WordFrequencies(id int) map[string]float64 {
	freqs, ok := e.d2w[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(freqs))
	for w, f := range freqs {
		out[w] = f
	}
	return out
}

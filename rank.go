package qdex

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/kaspersen/qdex/shardmap"
)

const (
	maxResults        = 5
	relevanceEpsilon  = 1e-6
	accumulatorShards = 100
)

// FindTopDocuments returns up to the 5 best-matching documents for query,
// ranked by TF-IDF relevance, run sequentially. A nil filter defaults to
// ActualFilter.
//
// EXAMPLE: query "fluffy cat" against a corpus where "fluffy" appears in
// 1 of 4 documents and "cat" in 2 of 4: idf(fluffy) = ln(4/1) ≈ 1.386,
// idf(cat) = ln(4/2) ≈ 0.693. A four-word document containing "fluffy"
// twice (tf = 0.5) and "cat" once (tf = 0.25) scores 0.5*1.386 + 0.25*0.693 ≈ 0.866,
// which beats a document containing only "cat" at tf 0.25 (≈ 0.173).
//
// WHY idf uses the natural log of document_count/df and not a smoothed
// variant: spec.md's ranking formula is fixed (no BM25-style smoothing),
// so a word present in every document yields idf 0 and contributes
// nothing -- by design, a word that fails to discriminate between
// documents shouldn't move the ranking.
func (e *Engine) FindTopDocuments(query string, filter Filter) ([]Document, error) {
	return e.findTopDocuments(Sequential, query, filter)
}

// FindTopDocumentsPolicy is FindTopDocuments with an explicit execution
// policy. Both policies return identical results.
func (e *Engine) FindTopDocumentsPolicy(policy Policy, query string, filter Filter) ([]Document, error) {
	return e.findTopDocuments(policy, query, filter)
}

func (e *Engine) findTopDocuments(policy Policy, query string, filter Filter) ([]Document, error) {
	if filter == nil {
		filter = ActualFilter()
	}

	// find_top_documents always dedups the parsed query, on both policies
	// -- the dedup-skip rule applies only to parallel match_document
	// (see match.go); here Policy only changes how the accumulation loop
	// over the (already deduped) words is scheduled.
	q, err := e.parseQuery(query, true)
	if err != nil {
		return nil, err
	}

	var acc map[int]float64
	if policy == Parallel {
		acc = e.accumulateParallel(q, filter)
	} else {
		acc = e.accumulateSequential(q, filter)
	}

	docs := make([]Document, 0, len(acc))
	for id, relevance := range acc {
		docs = append(docs, Document{ID: id, Relevance: relevance, Rating: e.docs[id].rating})
	}

	sort.Slice(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if math.Abs(a.Relevance-b.Relevance) < relevanceEpsilon {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.ID < b.ID
		}
		return a.Relevance > b.Relevance
	})

	if len(docs) > maxResults {
		docs = docs[:maxResults]
	}
	return docs, nil
}

// idf is ln(N/df): the natural-log inverse document frequency of word
// across all live documents, regardless of status.
func (e *Engine) idf(word string) float64 {
	df := len(e.w2d[word])
	return math.Log(float64(e.DocumentCount()) / float64(df))
}

func (e *Engine) accumulateSequential(q Query, filter Filter) map[int]float64 {
	acc := make(map[int]float64)

	for _, word := range q.Plus {
		postings, ok := e.w2d[word]
		if !ok {
			continue
		}
		idf := e.idf(word)
		for id, tf := range postings {
			meta := e.docs[id]
			if filter(id, meta.status, meta.rating) {
				acc[id] += tf * idf
			}
		}
	}

	for _, word := range q.Minus {
		for id := range e.w2d[word] {
			delete(acc, id)
		}
	}

	return acc
}

// accumulateParallel fans positive-word contributions out over a sharded
// accumulator, one goroutine per word, then barriers before fanning
// negative-word erasure out the same way. The barrier is load-bearing: a
// negative applied concurrently with a later positive could let that
// positive re-insert a document the negative just excluded.
func (e *Engine) accumulateParallel(q Query, filter Filter) map[int]float64 {
	acc := shardmap.New[int, float64](accumulatorShards)

	var positives errgroup.Group
	for _, word := range q.Plus {
		word := word
		positives.Go(func() error {
			postings, ok := e.w2d[word]
			if !ok {
				return nil
			}
			idf := e.idf(word)
			for id, tf := range postings {
				meta := e.docs[id]
				if !filter(id, meta.status, meta.rating) {
					continue
				}
				access := acc.GetOrInsert(id)
				access.Store(access.Load() + tf*idf)
				access.Unlock()
			}
			return nil
		})
	}
	_ = positives.Wait()

	var negatives errgroup.Group
	for _, word := range q.Minus {
		word := word
		negatives.Go(func() error {
			for id := range e.w2d[word] {
				acc.Erase(id)
			}
			return nil
		})
	}
	_ = negatives.Wait()

	result := make(map[int]float64)
	for _, entry := range acc.Drain() {
		result[entry.Key] = entry.Value
	}
	return result
}

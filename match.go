package qdex

import "golang.org/x/sync/errgroup"

// MatchDocument reports which of query's positive words appear in
// document id's text, run sequentially. If any of query's negative words
// appear in id's text, it returns no matched words at all. It fails
// OutOfRange if id does not exist.
func (e *Engine) MatchDocument(query string, id int) ([]string, Status, error) {
	return e.matchDocument(Sequential, query, id)
}

// MatchDocumentPolicy is MatchDocument with an explicit execution policy.
// Both policies return identical results, modulo the order of the matched
// words, which is always sorted ascending.
func (e *Engine) MatchDocumentPolicy(policy Policy, query string, id int) ([]string, Status, error) {
	return e.matchDocument(policy, query, id)
}

func (e *Engine) matchDocument(policy Policy, query string, id int) ([]string, Status, error) {
	meta, ok := e.docs[id]
	if !ok {
		return nil, 0, outOfRange("document id does not exist")
	}

	// Parallel match is the one path that bypasses query dedup: it
	// collects matches into a fixed-size slice indexed by parse position
	// (so a repeated word doesn't race itself under concurrent writes),
	// then sorts and uniquifies the result afterward instead of the input.
	q, err := e.parseQuery(query, policy == Sequential)
	if err != nil {
		return nil, 0, err
	}

	if policy == Parallel {
		return e.matchDocumentParallel(q, id, meta.status)
	}
	return e.matchDocumentSequential(q, id, meta.status)
}

func (e *Engine) matchDocumentSequential(q Query, id int, status Status) ([]string, Status, error) {
	for _, w := range q.Minus {
		if _, ok := e.w2d[w][id]; ok {
			return []string{}, status, nil
		}
	}

	matched := make([]string, 0, len(q.Plus))
	for _, w := range q.Plus {
		if _, ok := e.w2d[w][id]; ok {
			matched = append(matched, w)
		}
	}
	return matched, status, nil
}

func (e *Engine) matchDocumentParallel(q Query, id int, status Status) ([]string, Status, error) {
	excluded := make([]bool, len(q.Minus))
	var negatives errgroup.Group
	for i, w := range q.Minus {
		i, w := i, w
		negatives.Go(func() error {
			if _, ok := e.w2d[w][id]; ok {
				excluded[i] = true
			}
			return nil
		})
	}
	_ = negatives.Wait()
	for _, hit := range excluded {
		if hit {
			return []string{}, status, nil
		}
	}

	matched := make([]string, len(q.Plus))
	var positives errgroup.Group
	for i, w := range q.Plus {
		i, w := i, w
		positives.Go(func() error {
			if _, ok := e.w2d[w][id]; ok {
				matched[i] = w
			}
			return nil
		})
	}
	_ = positives.Wait()

	out := make([]string, 0, len(matched))
	for _, w := range matched {
		if w != "" {
			out = append(out, w)
		}
	}
	return sortUnique(out), status, nil
}

// Package requestqueue wraps a qdex.Engine and tracks how many of the
// most recent FindTopDocuments calls returned no results.
package requestqueue

import "github.com/kaspersen/qdex"

// DefaultWindow is the window size used by New, mirroring the original
// course project's fixed one-day-of-minute-ticks window.
const DefaultWindow = 1440

// Queue counts empty-result requests over a fixed-size trailing window.
// It is not safe for concurrent use from multiple goroutines; qdex.Engine
// mutation and Queue calls should be serialized by the caller the same way
// direct qdex.Engine calls must be.
type Queue struct {
	engine *qdex.Engine
	window int

	empty []bool
	head  int
	count int

	emptyInWindow int
}

// New wraps engine with a window of DefaultWindow requests.
func New(engine *qdex.Engine) *Queue {
	return NewWithWindow(engine, DefaultWindow)
}

// NewWithWindow wraps engine with an explicit window size. window <= 0 is
// treated as 1.
func NewWithWindow(engine *qdex.Engine, window int) *Queue {
	if window <= 0 {
		window = 1
	}
	return &Queue{engine: engine, window: window, empty: make([]bool, window)}
}

// AddFindRequest calls engine.FindTopDocuments(query, filter), records
// whether it returned zero documents, and returns its result unchanged.
func (q *Queue) AddFindRequest(query string, filter qdex.Filter) ([]qdex.Document, error) {
	results, err := q.engine.FindTopDocuments(query, filter)
	if err != nil {
		return nil, err
	}
	q.record(len(results) == 0)
	return results, nil
}

// AddFindRequestStatus is AddFindRequest with a status filter.
func (q *Queue) AddFindRequestStatus(query string, status qdex.Status) ([]qdex.Document, error) {
	return q.AddFindRequest(query, qdex.StatusFilter(status))
}

// AddFindRequestDefault is AddFindRequest with the default (ACTUAL) filter.
func (q *Queue) AddFindRequestDefault(query string) ([]qdex.Document, error) {
	return q.AddFindRequest(query, nil)
}

// NoResultRequests returns how many of the last window AddFindRequest
// calls returned zero documents.
func (q *Queue) NoResultRequests() int {
	return q.emptyInWindow
}

func (q *Queue) record(empty bool) {
	if q.count == q.window {
		if q.empty[q.head] {
			q.emptyInWindow--
		}
		q.empty[q.head] = empty
		if empty {
			q.emptyInWindow++
		}
		q.head = (q.head + 1) % q.window
		return
	}

	idx := (q.head + q.count) % q.window
	q.empty[idx] = empty
	q.count++
	if empty {
		q.emptyInWindow++
	}
}

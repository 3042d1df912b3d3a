package requestqueue

import (
	"testing"

	"github.com/kaspersen/qdex"
)

func newTestEngine(t *testing.T) *qdex.Engine {
	t.Helper()
	e, err := qdex.New("and in on")
	if err != nil {
		t.Fatalf("qdex.New: %v", err)
	}
	if err := e.AddDocument(1, "white cat and fancy collar", qdex.StatusActual, []int{8, -3}); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	return e
}

func TestNoResultRequestsCountsEmptyResults(t *testing.T) {
	q := NewWithWindow(newTestEngine(t), 3)

	calls := []string{"cat", "nonexistentword", "cat", "anothermissing"}
	for _, query := range calls {
		if _, err := q.AddFindRequestDefault(query); err != nil {
			t.Fatalf("AddFindRequestDefault(%q): %v", query, err)
		}
	}

	// Window is 3, so only the last 3 calls count: "nonexistentword" (empty),
	// "cat" (non-empty), "anothermissing" (empty) => 2 empty.
	if got := q.NoResultRequests(); got != 2 {
		t.Fatalf("NoResultRequests() = %d, want 2", got)
	}
}

func TestNoResultRequestsWindowEviction(t *testing.T) {
	q := NewWithWindow(newTestEngine(t), 2)

	if _, err := q.AddFindRequestDefault("missing1"); err != nil {
		t.Fatal(err)
	}
	if got := q.NoResultRequests(); got != 1 {
		t.Fatalf("after 1 empty call, NoResultRequests() = %d, want 1", got)
	}

	if _, err := q.AddFindRequestDefault("cat"); err != nil {
		t.Fatal(err)
	}
	if _, err := q.AddFindRequestDefault("cat"); err != nil {
		t.Fatal(err)
	}
	// Window now holds the last 2 calls, both non-empty.
	if got := q.NoResultRequests(); got != 0 {
		t.Fatalf("after eviction, NoResultRequests() = %d, want 0", got)
	}
}

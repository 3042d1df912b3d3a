package qdex

import "testing"

func TestRemoveDocumentClearsIndexEntries(t *testing.T) {
	e, _ := New("")
	if err := e.AddDocument(1, "cat dog", StatusActual, nil); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	e.RemoveDocument(1)

	if e.DocumentCount() != 0 {
		t.Errorf("DocumentCount() = %d, want 0", e.DocumentCount())
	}
	if len(e.WordFrequencies(1)) != 0 {
		t.Errorf("WordFrequencies(1) after removal = %v, want empty", e.WordFrequencies(1))
	}
	if _, ok := e.w2d["cat"][1]; ok {
		t.Error("word-to-document postings for 'cat' still reference removed document 1")
	}
}

func TestRemoveDocumentUnknownIDIsNoop(t *testing.T) {
	e, _ := New("")
	e.RemoveDocument(42) // must not panic
	if e.DocumentCount() != 0 {
		t.Errorf("DocumentCount() = %d, want 0", e.DocumentCount())
	}
}

func TestRemoveDocumentAffectsRanking(t *testing.T) {
	e, _ := New("")
	if err := e.AddDocument(1, "cat", StatusActual, nil); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	if err := e.AddDocument(2, "cat", StatusActual, nil); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}

	e.RemoveDocument(1)

	docs, err := e.FindTopDocuments("cat", nil)
	if err != nil {
		t.Fatalf("FindTopDocuments: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != 2 {
		t.Fatalf("docs = %+v, want only document 2", docs)
	}
}

func TestRemoveDocumentParallelPolicy(t *testing.T) {
	e, _ := New("")
	if err := e.AddDocument(1, "cat dog bird fish snake", StatusActual, nil); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	e.RemoveDocumentPolicy(Parallel, 1)

	if e.DocumentCount() != 0 {
		t.Errorf("DocumentCount() = %d, want 0", e.DocumentCount())
	}
	for _, w := range []string{"cat", "dog", "bird", "fish", "snake"} {
		if len(e.w2d[w]) != 0 {
			t.Errorf("w2d[%q] still has entries after parallel removal: %v", w, e.w2d[w])
		}
	}
}

// Command qdexdemo builds a small qdex index, runs a query through a
// requestqueue, paginates the results, and runs the duplicate detector. It
// exists to exercise the library end to end, not as a general-purpose CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kaspersen/qdex"
	"github.com/kaspersen/qdex/dedupe"
	"github.com/kaspersen/qdex/paginate"
	"github.com/kaspersen/qdex/requestqueue"
)

type seedDoc struct {
	id      int
	text    string
	status  qdex.Status
	ratings []int
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	engine, err := qdex.New("and in on")
	if err != nil {
		fail("build engine", err)
	}

	for _, d := range seedDocuments() {
		if err := engine.AddDocument(d.id, d.text, d.status, d.ratings); err != nil {
			fail(fmt.Sprintf("add document %d", d.id), err)
		}
	}

	queue := requestqueue.New(engine)
	results, err := queue.AddFindRequestDefault("fluffy groomed cat")
	if err != nil {
		fail("search", err)
	}

	pages, err := paginate.Paginate(results, 2)
	if err != nil {
		fail("paginate", err)
	}
	for i, page := range pages {
		fmt.Printf("page %d:\n", i+1)
		for _, doc := range page {
			fmt.Printf("  id=%d relevance=%.4f rating=%d\n", doc.ID, doc.Relevance, doc.Rating)
		}
	}
	fmt.Printf("no-result requests in window: %d\n", queue.NoResultRequests())

	dedupe.Remove(engine, os.Stdout)
	fmt.Printf("document count after dedupe: %d\n", engine.DocumentCount())
}

func seedDocuments() []seedDoc {
	return []seedDoc{
		{1, "white cat and fancy collar", qdex.StatusActual, []int{8, -3}},
		{2, "fluffy cat fluffy tail", qdex.StatusActual, []int{7, 2, 7}},
		{3, "groomed dog expressive eyes", qdex.StatusActual, []int{5, -12, 2, 1}},
		{4, "groomed starling evgeniy", qdex.StatusBanned, []int{9}},
		{5, "fluffy cat fluffy tail", qdex.StatusActual, []int{1}},
	}
}

func fail(action string, err error) {
	slog.Error("qdexdemo failed", slog.String("action", action), slog.Any("err", err))
	os.Exit(1)
}

package search

import (
	"math"
	"testing"

	"github.com/quickbites/quickbites/internal/catalog"
	"github.com/quickbites/quickbites/internal/similarity"
)

func testStore() *catalog.Store {
	return catalog.NewStore([]catalog.MenuItem{
		{Name: "Chicken Biryani", Restaurant: "R1", Category: "Main Course", Price: 300,
			Tags: []string{"biryani", "spicy"}, Description: "spicy chicken layered with basmati rice"},
		{Name: "Garden Salad", Restaurant: "R2", Category: "Salad", Price: 150,
			Tags: []string{"healthy", "refreshing"}, Description: "fresh greens with vinaigrette"},
		{Name: "Chocolate Cake", Restaurant: "R2", Category: "Dessert", Price: 180,
			Tags: []string{"dessert", "chocolate"}, Description: "rich chocolate sponge"},
	})
}

func newTestIndexer(t *testing.T) *Indexer {
	t.Helper()
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("NewIndexer failed: %v", err)
	}
	t.Cleanup(func() { indexer.Close() })

	if err := indexer.IndexCatalog(testStore()); err != nil {
		t.Fatalf("IndexCatalog failed: %v", err)
	}
	return indexer
}

func TestIndexCatalog_Count(t *testing.T) {
	indexer := newTestIndexer(t)

	count, err := indexer.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 indexed items, got %d", count)
	}
}

func TestSearchKeyword(t *testing.T) {
	indexer := newTestIndexer(t)

	results, err := indexer.SearchKeyword("chicken", 10)
	if err != nil {
		t.Fatalf("SearchKeyword failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(results))
	}
	if results[0].Name != "Chicken Biryani" || results[0].Restaurant != "R1" {
		t.Errorf("unexpected hit: %+v", results[0])
	}
	if results[0].Price != 300 {
		t.Errorf("expected stored price 300, got %f", results[0].Price)
	}
}

func TestSearchCategory(t *testing.T) {
	indexer := newTestIndexer(t)

	results, err := indexer.SearchCategory("chocolate", "Dessert", 10)
	if err != nil {
		t.Fatalf("SearchCategory failed: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Chocolate Cake" {
		t.Errorf("unexpected results: %+v", results)
	}

	// Same query scoped to the wrong category yields nothing.
	results, err = indexer.SearchCategory("chocolate", "Salad", 10)
	if err != nil {
		t.Fatalf("SearchCategory failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no hits outside category, got %d", len(results))
	}
}

func TestSearchHybrid(t *testing.T) {
	indexer := newTestIndexer(t)
	sim, err := similarity.NewEngine()
	if err != nil {
		t.Fatalf("similarity.NewEngine failed: %v", err)
	}

	results, err := indexer.SearchHybrid("spicy chicken rice", testStore(), sim, 10, DefaultFusionConfig)
	if err != nil {
		t.Fatalf("SearchHybrid failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected hybrid hits")
	}
	if results[0].Name != "Chicken Biryani" {
		t.Errorf("expected Chicken Biryani first, got %q", results[0].Name)
	}
}

func TestSearchHybrid_NilSimilarityFallsBack(t *testing.T) {
	indexer := newTestIndexer(t)

	results, err := indexer.SearchHybrid("salad", testStore(), nil, 10, DefaultFusionConfig)
	if err != nil {
		t.Fatalf("SearchHybrid failed: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Garden Salad" {
		t.Errorf("expected keyword fallback, got %+v", results)
	}
}

func TestNormalizeScores(t *testing.T) {
	results := normalizeScores([]Result{
		{Name: "a", Score: 0.0},
		{Name: "b", Score: 0.5},
		{Name: "c", Score: 1.0},
	})

	expected := []float64{0.0, 0.5, 1.0}
	for i, want := range expected {
		if math.Abs(results[i].Score-want) > 0.001 {
			t.Errorf("expected score %f at %d, got %f", want, i, results[i].Score)
		}
	}

	single := normalizeScores([]Result{{Name: "a", Score: 0.4}})
	if single[0].Score != 1.0 {
		t.Errorf("single result should normalize to 1.0, got %f", single[0].Score)
	}
}

func TestFuseScores_WeightedCombination(t *testing.T) {
	keyword := []Result{
		{Name: "A", Restaurant: "R1", Score: 1.0},
		{Name: "B", Restaurant: "R1", Score: 0.0},
	}
	semantic := []Result{
		{Name: "A", Restaurant: "R1", Score: 1.0},
	}

	fused := fuseScores(keyword, semantic, DefaultFusionConfig)
	if len(fused) != 2 {
		t.Fatalf("expected 2 fused results, got %d", len(fused))
	}

	scores := make(map[string]float64)
	for _, result := range fused {
		scores[result.Name] = result.Score
	}
	// A: 0.7*1.0 + 0.3*1.0; B: keyword-only 0.3*0.0.
	if math.Abs(scores["A"]-1.0) > 0.001 {
		t.Errorf("expected fused score 1.0 for A, got %f", scores["A"])
	}
	if scores["B"] != 0 {
		t.Errorf("expected 0 for B, got %f", scores["B"])
	}
}

package search

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/index/scorch"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/quickbites/quickbites/internal/catalog"
)

// Indexer manages the search index over the menu catalog.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
	indexPath  string
}

// NewIndexer creates an indexer with an in-memory Bleve index. The
// catalog is small and reloaded per process, so in-memory is the
// default.
func NewIndexer() (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	return &Indexer{bleveIndex: index}, nil
}

// NewIndexerWithPath creates an indexer with persistent disk storage.
func NewIndexerWithPath(indexPath string) (*Indexer, error) {
	if err := os.MkdirAll(filepath.Dir(indexPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	index, err := bleve.NewUsing(indexPath, buildIndexMapping(), scorch.Name, scorch.Name, nil)
	if err != nil {
		index, err = bleve.Open(indexPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open/create index: %w", err)
		}
	}

	return &Indexer{bleveIndex: index, indexPath: indexPath}, nil
}

// buildIndexMapping creates the Bleve index mapping for menu documents.
func buildIndexMapping() mapping.IndexMapping {
	menuMapping := bleve.NewDocumentMapping()

	nameFieldMapping := bleve.NewTextFieldMapping()
	menuMapping.AddFieldMappingsAt("name", nameFieldMapping)

	descFieldMapping := bleve.NewTextFieldMapping()
	menuMapping.AddFieldMappingsAt("description", descFieldMapping)

	tagsFieldMapping := bleve.NewTextFieldMapping()
	menuMapping.AddFieldMappingsAt("tags", tagsFieldMapping)

	categoryFieldMapping := bleve.NewTextFieldMapping()
	menuMapping.AddFieldMappingsAt("category", categoryFieldMapping)

	restaurantFieldMapping := bleve.NewTextFieldMapping()
	menuMapping.AddFieldMappingsAt("restaurant", restaurantFieldMapping)

	// Price: stored for retrieval, not searchable text.
	priceFieldMapping := bleve.NewNumericFieldMapping()
	priceFieldMapping.Index = false
	priceFieldMapping.IncludeInAll = false
	menuMapping.AddFieldMappingsAt("price", priceFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", menuMapping)

	return indexMapping
}

// IndexCatalog (re)indexes all items from the catalog snapshot.
func (i *Indexer) IndexCatalog(store *catalog.Store) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()

	for _, item := range store.Items() {
		doc := map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
			"tags":        strings.Join(item.Tags, " "),
			"category":    item.Category,
			"restaurant":  item.Restaurant,
			"price":       item.Price,
		}

		// Use restaurant/itemName as document ID, mirroring the
		// natural key.
		docID := fmt.Sprintf("%s/%s", item.Restaurant, item.Name)

		if err := batch.Index(docID, doc); err != nil {
			log.Printf("Warning: failed to index item %s: %v", docID, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index catalog: %w", err)
	}

	return nil
}

// Count returns the total number of indexed menu items.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docCount, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}
	return docCount, nil
}

// Close closes the index and releases resources.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}
	return nil
}

// buildMatchQuery creates a match query for BM25 keyword search.
func (i *Indexer) buildMatchQuery(searchText string) query.Query {
	return bleve.NewMatchQuery(searchText)
}

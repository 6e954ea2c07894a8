// Package repositoriestest provides an in-memory document store for tests.
package repositoriestest

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"ilovehiphop.ja/models"
	"ilovehiphop.ja/pkg/queryfilter"
	"ilovehiphop.ja/repositories"
)

// MemoryRepository mimics a document store: documents keep an "_id" field the
// way MongoDB returns them, and filters are evaluated like the real backends do.
type MemoryRepository struct {
	mu          sync.Mutex
	collections map[string][]models.Document
	nextID      int

	// Err, when set, is returned by every operation wrapped in a StoreError.
	Err error
	// PingErr, when set, fails only Ping.
	PingErr error
	// LastFilter and LastLimit record the most recent GetDocuments call.
	LastFilter queryfilter.Filter
	LastLimit  int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{collections: map[string][]models.Document{}}
}

// Seed stores documents as-is, bypassing validation, and returns their ids.
func (m *MemoryRepository) Seed(collection string, docs ...models.Document) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, m.insert(collection, d))
	}
	return ids
}

// Documents returns copies of every stored document of collection, "_id" included.
func (m *MemoryRepository) Documents(collection string) []models.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Document, 0, len(m.collections[collection]))
	for _, d := range m.collections[collection] {
		out = append(out, copyDocument(d))
	}
	return out
}

func (m *MemoryRepository) CreateDocument(_ context.Context, collection string, doc models.Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", &repositories.StoreError{Op: "insert", Collection: collection, Err: m.Err}
	}
	return m.insert(collection, doc), nil
}

func (m *MemoryRepository) GetDocuments(_ context.Context, collection string, filter queryfilter.Filter, limit int) ([]models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastFilter, m.LastLimit = filter, limit
	if m.Err != nil {
		return nil, &repositories.StoreError{Op: "find", Collection: collection, Err: m.Err}
	}
	if err := filter.Validate(); err != nil {
		return nil, &repositories.StoreError{Op: "find", Collection: collection, Err: err}
	}

	out := []models.Document{}
	for _, d := range m.collections[collection] {
		if limit > 0 && len(out) >= limit {
			break
		}
		if Matches(d, filter) {
			out = append(out, copyDocument(d))
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListCollections(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, &repositories.StoreError{Op: "list collections", Err: m.Err}
	}
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryRepository) Ping(context.Context) error {
	if m.PingErr != nil {
		return &repositories.StoreError{Op: "ping", Err: m.PingErr}
	}
	if m.Err != nil {
		return &repositories.StoreError{Op: "ping", Err: m.Err}
	}
	return nil
}

func (m *MemoryRepository) insert(collection string, doc models.Document) string {
	m.nextID++
	id := fmt.Sprintf("%024x", m.nextID)
	stored := copyDocument(doc)
	stored["_id"] = id
	m.collections[collection] = append(m.collections[collection], stored)
	return id
}

// Matches evaluates filter against doc.
func Matches(doc models.Document, filter queryfilter.Filter) bool {
	for _, c := range filter.Conditions {
		v, ok := doc[c.Field]
		if !ok {
			return false
		}
		switch c.Op {
		case queryfilter.OpEq:
			if want, isTime := c.Value.(time.Time); isTime {
				t, err := models.ParseTime(v)
				if err != nil || !t.Equal(want) {
					return false
				}
				continue
			}
			if !reflect.DeepEqual(v, c.Value) {
				return false
			}
		case queryfilter.OpContains:
			if !listContains(v, c.Value) {
				return false
			}
		case queryfilter.OpLte, queryfilter.OpGte:
			t, err := models.ParseTime(v)
			bound, isTime := c.Value.(time.Time)
			if err != nil || !isTime {
				return false
			}
			if c.Op == queryfilter.OpLte && t.After(bound) {
				return false
			}
			if c.Op == queryfilter.OpGte && t.Before(bound) {
				return false
			}
		}
	}
	return true
}

func listContains(list any, want any) bool {
	switch l := list.(type) {
	case []string:
		for _, item := range l {
			if item == want {
				return true
			}
		}
	case []any:
		for _, item := range l {
			if item == want {
				return true
			}
		}
	}
	return false
}

func copyDocument(d models.Document) models.Document {
	out := make(models.Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

var _ repositories.IDocumentRepository = (*MemoryRepository)(nil)

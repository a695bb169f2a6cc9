// Package store persists the application's collections. The engine
// never talks to storage directly; it receives and returns in-memory
// collections, and callers replace whole collections through this
// interface.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lkaestner/tourplan/internal/tour"
)

// Collection names.
const (
	CollectionEmployees = "employees"
	CollectionResidents = "residents"
	CollectionTours     = "tours"
	CollectionTasks     = "tasks"
)

// Store is a key-value store keyed by logical collection name. There
// are no partial updates; a set always replaces the whole collection.
type Store interface {
	// GetCollection returns the raw JSON document of a collection, or
	// nil if the collection has never been written.
	GetCollection(ctx context.Context, name string) ([]byte, error)

	// SetCollection replaces a collection's JSON document.
	SetCollection(ctx context.Context, name string, data []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// Load reads and decodes a collection. A missing collection decodes to
// an empty slice.
func Load[T any](ctx context.Context, s Store, name string) ([]T, error) {
	data, err := s.GetCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding collection %s: %w", name, err)
	}
	return items, nil
}

// Save encodes and writes a collection.
func Save[T any](ctx context.Context, s Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", name, err)
	}
	return s.SetCollection(ctx, name, data)
}

// LoadTours reads the tours collection.
func LoadTours(ctx context.Context, s Store) ([]tour.Tour, error) {
	return Load[tour.Tour](ctx, s, CollectionTours)
}

// SaveTours replaces the tours collection and rewrites the flat tasks
// collection from tour ownership, keeping the two views consistent.
func SaveTours(ctx context.Context, s Store, tours []tour.Tour) error {
	if err := Save(ctx, s, CollectionTours, tours); err != nil {
		return err
	}
	var tasks []tour.Task
	for _, t := range tours {
		tasks = append(tasks, t.Tasks...)
	}
	return Save(ctx, s, CollectionTasks, tasks)
}

// LoadEmployees reads the employees collection.
func LoadEmployees(ctx context.Context, s Store) ([]tour.Employee, error) {
	return Load[tour.Employee](ctx, s, CollectionEmployees)
}

// SaveEmployees replaces the employees collection.
func SaveEmployees(ctx context.Context, s Store, employees []tour.Employee) error {
	return Save(ctx, s, CollectionEmployees, employees)
}

// LoadResidents reads the residents collection.
func LoadResidents(ctx context.Context, s Store) ([]tour.Resident, error) {
	return Load[tour.Resident](ctx, s, CollectionResidents)
}

// SaveResidents replaces the residents collection.
func SaveResidents(ctx context.Context, s Store, residents []tour.Resident) error {
	return Save(ctx, s, CollectionResidents, residents)
}

// internal/storage/storage.go
//
// Package storage persists the card-discovery ledger. The simulation core
// never calls it; the orchestrating layer loads the library before play and
// saves discoveries after a mutation returns.
package storage

import (
	"context"

	"go-card-defense/internal/card"
)

// LibraryStore is the persistence boundary for the discovery ledger.
type LibraryStore interface {
	// LoadLibrary returns the persisted ledger as a fresh Library.
	LoadLibrary(ctx context.Context) (*card.Library, error)
	// SaveDiscovery records one discovery, keeping the earliest timestamp
	// on conflict.
	SaveDiscovery(ctx context.Context, d card.Discovery) error
	// SaveLibrary records every discovery in the library.
	SaveLibrary(ctx context.Context, library *card.Library) error
	// Close releases the store's resources.
	Close() error
}

// MemoryStore keeps the ledger in memory. Used in tests and when no ledger
// path is configured.
type MemoryStore struct {
	discoveries map[string]int64
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{discoveries: make(map[string]int64)}
}

func (s *MemoryStore) LoadLibrary(ctx context.Context) (*card.Library, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	library := card.NewLibrary()
	for id, at := range s.discoveries {
		library.Restore(card.Discovery{CardID: id, DiscoveredAt: at})
	}
	return library, nil
}

func (s *MemoryStore) SaveDiscovery(ctx context.Context, d card.Discovery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if at, known := s.discoveries[d.CardID]; known && at <= d.DiscoveredAt {
		return nil
	}
	s.discoveries[d.CardID] = d.DiscoveredAt
	return nil
}

func (s *MemoryStore) SaveLibrary(ctx context.Context, library *card.Library) error {
	for _, d := range library.Discoveries() {
		if err := s.SaveDiscovery(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

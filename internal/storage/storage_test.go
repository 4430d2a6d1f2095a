package storage

import (
	"context"
	"path/filepath"
	"testing"

	"go-card-defense/internal/card"
)

// storeUnderTest runs the same contract against every LibraryStore
// implementation.
func storeContract(t *testing.T, store LibraryStore) {
	t.Helper()
	ctx := context.Background()

	library, err := store.LoadLibrary(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if library.Size() != 0 {
		t.Fatalf("expected empty ledger, got %d", library.Size())
	}

	if err := store.SaveDiscovery(ctx, card.Discovery{CardID: "CARD_A", DiscoveredAt: 5000}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Earlier timestamp wins on conflict.
	if err := store.SaveDiscovery(ctx, card.Discovery{CardID: "CARD_A", DiscoveredAt: 3000}); err != nil {
		t.Fatalf("save earlier: %v", err)
	}
	// Later timestamp is ignored.
	if err := store.SaveDiscovery(ctx, card.Discovery{CardID: "CARD_A", DiscoveredAt: 9000}); err != nil {
		t.Fatalf("save later: %v", err)
	}

	library, err = store.LoadLibrary(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	at, known := library.DiscoveredAt("CARD_A")
	if !known || at != 3000 {
		t.Fatalf("expected CARD_A at 3000, got %d (%v)", at, known)
	}

	// SaveLibrary persists the whole ledger.
	fresh := card.NewLibrary()
	fresh.Discover("CARD_B", 100)
	fresh.Discover("CARD_C", 200)
	if err := store.SaveLibrary(ctx, fresh); err != nil {
		t.Fatalf("save library: %v", err)
	}
	library, err = store.LoadLibrary(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if library.Size() != 3 {
		t.Fatalf("expected 3 discoveries, got %d", library.Size())
	}
}

func TestMemoryStoreContract(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	storeContract(t, store)
}

func TestSQLiteStoreContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()
	storeContract(t, store)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	ctx := context.Background()
	if err := store.SaveDiscovery(ctx, card.Discovery{CardID: "CARD_A", DiscoveredAt: 42}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer reopened.Close()
	library, err := reopened.LoadLibrary(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !library.IsDiscovered("CARD_A") {
		t.Fatalf("discovery lost across reopen")
	}
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite("   "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

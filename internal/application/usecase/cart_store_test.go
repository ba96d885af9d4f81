package usecase

import (
	"testing"
)

func TestCartStoreAddPersistsAndRenders(t *testing.T) {
	repo := &memCartRepo{}
	view := &fakeCartView{}
	icons := &fakeIcons{}
	store := NewCartStore(repo, view, icons)

	if err := store.Add("p1", "Silk Scarf", 100, "scarf.png"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add("p1", "Silk Scarf", 100, "scarf.png"); err != nil {
		t.Fatalf("second Add: %v", err)
	}

	if repo.saves != 2 {
		t.Fatalf("saves = %d, want 2 (one write-through per mutation)", repo.saves)
	}
	if repo.saved.Len() != 1 || repo.saved.Items[0].Qty != 2 {
		t.Fatalf("persisted cart = %+v, want one line qty=2", repo.saved.Items)
	}
	if view.renders != 2 {
		t.Fatalf("renders = %d, want 2", view.renders)
	}
	if view.total != 200 {
		t.Fatalf("rendered total = %v, want 200", view.total)
	}
	if icons.refreshes != 2 {
		t.Fatalf("icon refreshes = %d, want 2", icons.refreshes)
	}
}

func TestCartStoreLoadReplacesInMemoryCart(t *testing.T) {
	repo := &memCartRepo{}
	seed := NewCartStore(repo, &fakeCartView{}, &fakeIcons{})
	if err := seed.Add("p1", "Candle", 40, ""); err != nil {
		t.Fatalf("seed Add: %v", err)
	}

	view := &fakeCartView{}
	store := NewCartStore(repo, view, &fakeIcons{})
	store.Load()

	if store.Len() != 1 || store.Total() != 40 {
		t.Fatalf("loaded cart len=%d total=%v, want 1/40", store.Len(), store.Total())
	}
	if view.renders != 1 {
		t.Fatalf("Load renders = %d, want 1", view.renders)
	}
}

func TestCartStoreRemoveAtStaleIndexStillRenders(t *testing.T) {
	repo := &memCartRepo{}
	view := &fakeCartView{}
	store := NewCartStore(repo, view, &fakeIcons{})
	if err := store.Add("p1", "Candle", 40, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	store.RemoveAt(9)

	if store.Len() != 1 {
		t.Fatalf("stale RemoveAt dropped a line: len = %d", store.Len())
	}
	if view.renders != 2 {
		t.Fatalf("renders = %d, want 2 (the stale remove still re-renders)", view.renders)
	}

	store.RemoveAt(0)
	if store.Len() != 0 {
		t.Fatalf("RemoveAt(0) left %d lines", store.Len())
	}
	if repo.saved.Len() != 0 {
		t.Fatalf("persisted cart not emptied: %+v", repo.saved.Items)
	}
}

func TestCartStorePersistFailureKeepsInMemoryCart(t *testing.T) {
	view := &fakeCartView{}
	store := NewCartStore(&failingCartRepo{}, view, &fakeIcons{})

	if err := store.Add("p1", "Candle", 40, ""); err != nil {
		t.Fatalf("Add must not surface a storage error, got %v", err)
	}
	if store.Len() != 1 || store.Total() != 40 {
		t.Fatalf("in-memory cart lost the line: len=%d total=%v", store.Len(), store.Total())
	}
	if view.renders != 1 {
		t.Fatalf("renders = %d, want 1", view.renders)
	}
}

func TestCartStoreClear(t *testing.T) {
	repo := &memCartRepo{}
	store := NewCartStore(repo, &fakeCartView{}, &fakeIcons{})
	if err := store.Add("p1", "Candle", 40, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add("p2", "Vase", 60, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	store.Clear()

	if store.Len() != 0 || store.Total() != 0 {
		t.Fatalf("Clear left len=%d total=%v", store.Len(), store.Total())
	}
	if repo.saved.Len() != 0 {
		t.Fatalf("persisted cart not cleared: %+v", repo.saved.Items)
	}
}

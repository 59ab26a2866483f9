package bead

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(context.Background(), filepath.Join(t.TempDir(), "beads.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_ImportLoadRoundTrip(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	d := 30
	in := []Bead{
		{ID: "a", Title: "First", Status: "closed", Priority: 1, BlockedBy: []string{}, Blocks: []string{"b"}},
		{ID: "b", Title: "Second", Status: "open", Priority: 0, BlockedBy: []string{"a"}, Blocks: []string{"c"}, Duration: &d},
		{ID: "c", Title: "Third", Status: "open", Priority: 2, BlockedBy: []string{"b"}, Blocks: []string{}},
	}

	if err := store.Import(ctx, in); err != nil {
		t.Fatalf("Import: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_LoadRebuildsBothEdgeDirections(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	// Import writes only the blocked_by side; Load must mirror it into
	// blocks on the blocker.
	in := []Bead{
		{ID: "x", Status: "open", BlockedBy: []string{}, Blocks: []string{}},
		{ID: "y", Status: "open", BlockedBy: []string{"x"}, Blocks: []string{}},
	}
	if err := store.Import(ctx, in); err != nil {
		t.Fatalf("Import: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"y"}, got[0].Blocks); diff != "" {
		t.Errorf("blocker's blocks not rebuilt (-want +got):\n%s", diff)
	}
}

func TestStore_ImportReplacesSnapshot(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	first := []Bead{{ID: "old", Status: "open", BlockedBy: []string{}, Blocks: []string{}}}
	second := []Bead{{ID: "new", Status: "open", BlockedBy: []string{}, Blocks: []string{}}}

	if err := store.Import(ctx, first); err != nil {
		t.Fatalf("Import(first): %v", err)
	}
	if err := store.Import(ctx, second); err != nil {
		t.Fatalf("Import(second): %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "new" {
		t.Errorf("Load after re-import = %v, want only \"new\"", got)
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load(empty db) = %v, want empty", got)
	}
}

func TestStore_PreservesInputOrder(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	in := []Bead{
		{ID: "z", Status: "open", BlockedBy: []string{}, Blocks: []string{}},
		{ID: "a", Status: "open", BlockedBy: []string{}, Blocks: []string{}},
		{ID: "m", Status: "open", BlockedBy: []string{}, Blocks: []string{}},
	}
	if err := store.Import(ctx, in); err != nil {
		t.Fatalf("Import: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var ids []string
	for _, b := range got {
		ids = append(ids, b.ID)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, ids); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

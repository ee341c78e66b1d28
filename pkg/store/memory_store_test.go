package store

import (
	"context"
	"testing"

	"credema/pkg/domain"
)

func TestMemoryStoreInsertKeepsOrderAndSkipsDuplicates(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	first := []domain.Account{
		{ID: "admin-dg", Email: "dg@credema.finance"},
		{ID: "investor-001", Email: "daniel-grossmann@hotmail.com"},
	}
	if err := m.InsertAccounts(ctx, first); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// Re-inserting the same ids must be a no-op, not a duplicate row.
	if err := m.InsertAccounts(ctx, first); err != nil {
		t.Fatalf("re-insert: %v", err)
	}

	accounts, err := m.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].ID != "admin-dg" || accounts[1].ID != "investor-001" {
		t.Fatalf("insertion order lost: %+v", accounts)
	}
}

func TestMemoryStoreUpdateIgnoresUnknownID(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if err := m.InsertDeals(ctx, []domain.Deal{{ID: "CD-2026-001", Status: domain.DealPending}}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := m.UpdateDeal(ctx, domain.Deal{ID: "CD-2026-001", Status: domain.DealActive}); err != nil {
		t.Fatalf("update known: %v", err)
	}
	if err := m.UpdateDeal(ctx, domain.Deal{ID: "CD-9999-999", Status: domain.DealActive}); err != nil {
		t.Fatalf("update unknown: %v", err)
	}

	deals, err := m.ListDeals(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(deals) != 1 {
		t.Fatalf("unknown-id update must not create rows, got %d", len(deals))
	}
	if deals[0].Status != domain.DealActive {
		t.Fatalf("known-id update lost: %+v", deals[0])
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if err := m.InsertPosts(ctx, domain.SeedPosts()); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := m.DeletePost(ctx, "2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	posts, err := m.ListPosts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts after delete, got %d", len(posts))
	}
	for _, p := range posts {
		if p.ID == "2" {
			t.Fatal("deleted post still listed")
		}
	}

	// Deleting an absent id is not an error.
	if err := m.DeletePost(ctx, "2"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

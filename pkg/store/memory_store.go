package store

import (
	"context"
	"sync"

	"credema/pkg/domain"
)

// MemoryStore keeps all three collections in-process. It backs tests
// and offline runs where no database is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	deals    map[string]domain.Deal
	posts    map[string]domain.BlogPost
	order    map[string][]string // collection -> insertion-ordered ids
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]domain.Account),
		deals:    make(map[string]domain.Deal),
		posts:    make(map[string]domain.BlogPost),
		order:    make(map[string][]string),
	}
}

func (m *MemoryStore) track(collection, id string) {
	m.order[collection] = append(m.order[collection], id)
}

func (m *MemoryStore) untrack(collection, id string) {
	kept := m.order[collection][:0]
	for _, item := range m.order[collection] {
		if item != id {
			kept = append(kept, item)
		}
	}
	m.order[collection] = kept
}

// ListAccounts returns accounts in insertion order.
func (m *MemoryStore) ListAccounts(_ context.Context) ([]domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Account, 0, len(m.accounts))
	for _, id := range m.order["accounts"] {
		if a, ok := m.accounts[id]; ok {
			res = append(res, a)
		}
	}
	return res, nil
}

// InsertAccounts adds accounts, skipping ids that already exist.
func (m *MemoryStore) InsertAccounts(_ context.Context, accounts []domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range accounts {
		if _, exists := m.accounts[a.ID]; exists {
			continue
		}
		m.accounts[a.ID] = a
		m.track("accounts", a.ID)
	}
	return nil
}

// UpdateAccount replaces the stored record when the id is known.
func (m *MemoryStore) UpdateAccount(_ context.Context, a domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[a.ID]; ok {
		m.accounts[a.ID] = a
	}
	return nil
}

// DeleteAccount removes one account.
func (m *MemoryStore) DeleteAccount(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)
	m.untrack("accounts", id)
	return nil
}

// ListDeals returns deals in insertion order.
func (m *MemoryStore) ListDeals(_ context.Context) ([]domain.Deal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Deal, 0, len(m.deals))
	for _, id := range m.order["deals"] {
		if d, ok := m.deals[id]; ok {
			res = append(res, d)
		}
	}
	return res, nil
}

// InsertDeals adds deals, skipping ids that already exist.
func (m *MemoryStore) InsertDeals(_ context.Context, deals []domain.Deal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range deals {
		if _, exists := m.deals[d.ID]; exists {
			continue
		}
		m.deals[d.ID] = d
		m.track("deals", d.ID)
	}
	return nil
}

// UpdateDeal replaces the stored record when the id is known.
func (m *MemoryStore) UpdateDeal(_ context.Context, d domain.Deal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.deals[d.ID]; ok {
		m.deals[d.ID] = d
	}
	return nil
}

// DeleteDeal removes one deal.
func (m *MemoryStore) DeleteDeal(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.deals, id)
	m.untrack("deals", id)
	return nil
}

// ListPosts returns blog posts in insertion order.
func (m *MemoryStore) ListPosts(_ context.Context) ([]domain.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.BlogPost, 0, len(m.posts))
	for _, id := range m.order["posts"] {
		if p, ok := m.posts[id]; ok {
			res = append(res, p)
		}
	}
	return res, nil
}

// InsertPosts adds posts, skipping ids that already exist.
func (m *MemoryStore) InsertPosts(_ context.Context, posts []domain.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range posts {
		if _, exists := m.posts[p.ID]; exists {
			continue
		}
		m.posts[p.ID] = p
		m.track("posts", p.ID)
	}
	return nil
}

// UpdatePost replaces the stored record when the id is known.
func (m *MemoryStore) UpdatePost(_ context.Context, p domain.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[p.ID]; ok {
		m.posts[p.ID] = p
	}
	return nil
}

// DeletePost removes one blog post.
func (m *MemoryStore) DeletePost(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.posts, id)
	m.untrack("posts", id)
	return nil
}

// Package datasync reconciles the remote backend with the local
// durable cache. Reads are stale-but-available: a reachable backend
// refreshes the cache, an unreachable one is served from it. Mutations
// write remote-first and answer with a full refreshed snapshot, so
// callers always see their own writes when the backend accepted them.
package datasync

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"credema/pkg/cache"
	"credema/pkg/domain"
	"credema/pkg/store"
)

// Persisted local cache keys, one snapshot per collection plus the
// session record owned by the session manager.
const (
	KeyAccounts = "credema:accounts:v1"
	KeyDeals    = "credema:deals:v1"
	KeyPosts    = "credema:posts:v1"
	KeySession  = "credema:session:v1"
)

// Service is the sole mover of data between the remote store and the
// local cache collection keys.
type Service struct {
	accounts *collection[domain.Account]
	deals    *collection[domain.Deal]
	posts    *collection[domain.BlogPost]
}

// New wires the three collections over one remote store and one cache.
func New(remote store.RemoteStore, local cache.Cache, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	boot := &singleflight.Group{}
	return &Service{
		accounts: &collection[domain.Account]{
			name:   "accounts",
			key:    KeyAccounts,
			seed:   domain.SeedAccounts(),
			idOf:   func(a domain.Account) string { return a.ID },
			list:   remote.ListAccounts,
			insert: remote.InsertAccounts,
			update: remote.UpdateAccount,
			remove: remote.DeleteAccount,
			cache:  local,
			boot:   boot,
			log:    log,
		},
		deals: &collection[domain.Deal]{
			name:   "deals",
			key:    KeyDeals,
			seed:   domain.SeedDeals(),
			idOf:   func(d domain.Deal) string { return d.ID },
			list:   remote.ListDeals,
			insert: remote.InsertDeals,
			update: remote.UpdateDeal,
			remove: remote.DeleteDeal,
			cache:  local,
			boot:   boot,
			log:    log,
		},
		posts: &collection[domain.BlogPost]{
			name:   "posts",
			key:    KeyPosts,
			seed:   domain.SeedPosts(),
			idOf:   func(p domain.BlogPost) string { return p.ID },
			list:   remote.ListPosts,
			insert: remote.InsertPosts,
			update: remote.UpdatePost,
			remove: remote.DeletePost,
			cache:  local,
			boot:   boot,
			log:    log,
		},
	}
}

// FetchAccounts returns the best-known account set.
func (s *Service) FetchAccounts(ctx context.Context) []domain.Account {
	return s.accounts.fetchAll(ctx)
}

// CreateAccount inserts remotely and returns the refreshed set.
func (s *Service) CreateAccount(ctx context.Context, a domain.Account) []domain.Account {
	return s.accounts.create(ctx, a)
}

// UpdateAccount updates remotely and returns the refreshed set.
func (s *Service) UpdateAccount(ctx context.Context, a domain.Account) []domain.Account {
	return s.accounts.replace(ctx, a)
}

// DeleteAccount purges locally, deletes remotely best-effort, and
// returns the purged set.
func (s *Service) DeleteAccount(ctx context.Context, id string) []domain.Account {
	return s.accounts.delete(ctx, id)
}

// FetchDeals returns the best-known deal set.
func (s *Service) FetchDeals(ctx context.Context) []domain.Deal {
	return s.deals.fetchAll(ctx)
}

// CreateDeal inserts remotely and returns the refreshed set.
func (s *Service) CreateDeal(ctx context.Context, d domain.Deal) []domain.Deal {
	return s.deals.create(ctx, d)
}

// UpdateDeal updates remotely and returns the refreshed set.
func (s *Service) UpdateDeal(ctx context.Context, d domain.Deal) []domain.Deal {
	return s.deals.replace(ctx, d)
}

// DeleteDeal purges locally, deletes remotely best-effort, and returns
// the purged set.
func (s *Service) DeleteDeal(ctx context.Context, id string) []domain.Deal {
	return s.deals.delete(ctx, id)
}

// FetchPosts returns the best-known blog post set.
func (s *Service) FetchPosts(ctx context.Context) []domain.BlogPost {
	return s.posts.fetchAll(ctx)
}

// CreatePost inserts remotely and returns the refreshed set.
func (s *Service) CreatePost(ctx context.Context, p domain.BlogPost) []domain.BlogPost {
	return s.posts.create(ctx, p)
}

// UpdatePost updates remotely and returns the refreshed set.
func (s *Service) UpdatePost(ctx context.Context, p domain.BlogPost) []domain.BlogPost {
	return s.posts.replace(ctx, p)
}

// DeletePost purges locally, deletes remotely best-effort, and returns
// the purged set.
func (s *Service) DeletePost(ctx context.Context, id string) []domain.BlogPost {
	return s.posts.delete(ctx, id)
}

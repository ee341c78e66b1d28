package store

import (
	"context"

	"credema/pkg/domain"
)

// RemoteStore is the thin client to the hosted relational backend. Each
// collection exposes the same four operations: select-all, insert-many,
// update-by-id, delete-by-id. Calls may fail; recovery is the caller's
// responsibility (the synchronization service falls back to its cache).
type RemoteStore interface {
	// accounts
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	InsertAccounts(ctx context.Context, accounts []domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, id string) error

	// deals
	ListDeals(ctx context.Context) ([]domain.Deal, error)
	InsertDeals(ctx context.Context, deals []domain.Deal) error
	UpdateDeal(ctx context.Context, deal domain.Deal) error
	DeleteDeal(ctx context.Context, id string) error

	// posts
	ListPosts(ctx context.Context) ([]domain.BlogPost, error)
	InsertPosts(ctx context.Context, posts []domain.BlogPost) error
	UpdatePost(ctx context.Context, post domain.BlogPost) error
	DeletePost(ctx context.Context, id string) error
}

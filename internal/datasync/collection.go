package datasync

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"credema/pkg/cache"
)

// collection implements the shared read/write contract for one remote
// table plus its local cache key. All three collections behave
// identically; only the record type and wiring differ.
type collection[T any] struct {
	name string
	key  string
	seed []T
	idOf func(T) string

	list   func(context.Context) ([]T, error)
	insert func(context.Context, []T) error
	update func(context.Context, T) error
	remove func(context.Context, string) error

	cache cache.Cache
	boot  *singleflight.Group
	log   *slog.Logger
}

// fetchAll reads the remote collection, falling back to the cached
// snapshot on failure. Zero remote rows mean an uninitialized backend:
// the seed fixtures are inserted (single-flight guarded, idempotent by
// fixed seed ids) and returned. It never fails the caller.
func (c *collection[T]) fetchAll(ctx context.Context) []T {
	rows, err := c.list(ctx)
	if err != nil {
		c.log.Warn("remote fetch failed, serving cached snapshot",
			"collection", c.name, "err", err)
		return c.cached(ctx)
	}
	if len(rows) == 0 {
		seeded, _, _ := c.boot.Do(c.key, func() (any, error) {
			if err := c.insert(ctx, c.seed); err != nil {
				c.log.Warn("bootstrap seeding failed",
					"collection", c.name, "err", err)
			}
			return c.seed, nil
		})
		return seeded.([]T)
	}
	if err := c.cache.Put(ctx, c.key, rows); err != nil {
		c.log.Warn("cache refresh failed", "collection", c.name, "err", err)
	}
	return rows
}

// cached returns the local snapshot, reseeding the cache from fixtures
// when it is absent or was discarded as corrupt.
func (c *collection[T]) cached(ctx context.Context) []T {
	var snap []T
	ok, err := c.cache.Get(ctx, c.key, &snap)
	if err != nil {
		c.log.Warn("cache read failed", "collection", c.name, "err", err)
	}
	if !ok || snap == nil {
		if err := c.cache.Put(ctx, c.key, c.seed); err != nil {
			c.log.Warn("cache seed failed", "collection", c.name, "err", err)
		}
		return c.seed
	}
	return snap
}

// create issues the remote insert, then returns the refreshed
// collection. A failed insert is logged and otherwise invisible: the
// caller observes it only as the record's absence from the result.
func (c *collection[T]) create(ctx context.Context, rec T) []T {
	if err := c.insert(ctx, []T{rec}); err != nil {
		c.log.Warn("remote insert failed",
			"collection", c.name, "id", c.idOf(rec), "err", err)
	}
	return c.fetchAll(ctx)
}

// replace issues the remote update by id, then returns the refreshed
// collection, with the same swallow-and-refresh policy as create.
func (c *collection[T]) replace(ctx context.Context, rec T) []T {
	if err := c.update(ctx, rec); err != nil {
		c.log.Warn("remote update failed",
			"collection", c.name, "id", c.idOf(rec), "err", err)
	}
	return c.fetchAll(ctx)
}

// delete purges id from the local cache first, then attempts the
// remote delete. Local state is authoritative once the delete is
// issued; a remote failure is logged, never rolled back.
func (c *collection[T]) delete(ctx context.Context, id string) []T {
	local := c.cached(ctx)
	kept := make([]T, 0, len(local))
	for _, rec := range local {
		if c.idOf(rec) != id {
			kept = append(kept, rec)
		}
	}
	if err := c.cache.Put(ctx, c.key, kept); err != nil {
		c.log.Warn("cache purge failed", "collection", c.name, "id", id, "err", err)
	}
	if err := c.remove(ctx, id); err != nil {
		c.log.Warn("remote delete failed, local purge stands",
			"collection", c.name, "id", id, "err", err)
	}
	return kept
}

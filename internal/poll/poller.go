// Package poll drives the fixed-interval background refresh of all
// three collections, publishing a collection to its consumer only when
// its content actually changed.
package poll

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"credema/internal/datasync"
	"credema/pkg/domain"
)

// DefaultInterval matches the console's 5-second refresh cadence.
const DefaultInterval = 5 * time.Second

// Publisher receives refreshed collections. A method is only invoked
// when that collection's content differs from the last published one.
type Publisher interface {
	PublishAccounts([]domain.Account)
	PublishDeals([]domain.Deal)
	PublishPosts([]domain.BlogPost)
}

// Poller re-runs the synchronization read path on a fixed period.
type Poller struct {
	data     *datasync.Service
	pub      Publisher
	interval time.Duration
	log      *slog.Logger

	ready     chan struct{}
	readyOnce sync.Once
	digests   map[string]string
}

// New builds a poller; interval <= 0 selects DefaultInterval.
func New(data *datasync.Service, pub Publisher, interval time.Duration, log *slog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = slog.Default()
	}
	return &Poller{
		data:     data,
		pub:      pub,
		interval: interval,
		log:      log,
		ready:    make(chan struct{}),
		digests:  make(map[string]string),
	}
}

// Ready is closed once the first combined refresh has completed; the
// console holds its loading state until then.
func (p *Poller) Ready() <-chan struct{} {
	return p.ready
}

// Run performs one immediate refresh, then ticks until ctx is
// cancelled. In-flight fetches are not interrupted mid-cycle; a cycle
// finishing after cancellation is simply not followed by another.
func (p *Poller) Run(ctx context.Context) {
	p.refresh(ctx)
	p.readyOnce.Do(func() { close(p.ready) })

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

// refresh fetches all three collections and publishes the changed ones.
func (p *Poller) refresh(ctx context.Context) {
	accounts := p.data.FetchAccounts(ctx)
	if p.changed(datasync.KeyAccounts, accounts) {
		p.pub.PublishAccounts(accounts)
	}
	deals := p.data.FetchDeals(ctx)
	if p.changed(datasync.KeyDeals, deals) {
		p.pub.PublishDeals(deals)
	}
	posts := p.data.FetchPosts(ctx)
	if p.changed(datasync.KeyPosts, posts) {
		p.pub.PublishPosts(posts)
	}
}

// changed records the collection's content digest and reports whether
// it differs from the previous cycle's.
func (p *Poller) changed(key string, v any) bool {
	d := digest(v)
	if p.digests[key] == d {
		return false
	}
	p.digests[key] = d
	return true
}

// digest hashes the canonical JSON encoding. Struct fields marshal in
// declaration order and map keys sort, so equal content always hashes
// equal regardless of how the snapshot was produced.
func digest(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Package session owns the single "current identity" record: at most
// one account, marked logged-in, persisted locally under a fixed key.
// Sessions are never stored remotely.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"credema/internal/datasync"
	"credema/pkg/cache"
	"credema/pkg/domain"
)

// Manager holds the current identity and keeps it in step with the
// persisted session record.
type Manager struct {
	data  *datasync.Service
	cache cache.Cache
	log   *slog.Logger

	mu      sync.RWMutex
	current domain.Account
}

// NewManager starts with the anonymous identity.
func NewManager(data *datasync.Service, local cache.Cache, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		data:    data,
		cache:   local,
		log:     log,
		current: domain.Anonymous(),
	}
}

// Current returns the active identity (anonymous when logged out).
func (m *Manager) Current() domain.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Login matches identifier against the known accounts, by exact id or
// case-insensitive email, marks the match current and persists it.
// The second return is false when nothing matched; surfacing that is
// the caller's job.
func (m *Manager) Login(ctx context.Context, identifier string) (domain.Account, bool) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return domain.Account{}, false
	}
	for _, account := range m.data.FetchAccounts(ctx) {
		if account.ID == identifier || strings.EqualFold(account.Email, identifier) {
			account.IsLoggedIn = true
			m.persist(ctx, account)
			return account, true
		}
	}
	return domain.Account{}, false
}

// Logout clears the persisted session and resets to anonymous.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.cache.Delete(ctx, datasync.KeySession); err != nil {
		m.log.Warn("session delete failed", "err", err)
	}
	m.mu.Lock()
	m.current = domain.Anonymous()
	m.mu.Unlock()
}

// RefreshOnStartup restores a persisted session. The stored identity is
// trusted immediately, then reconciled against the freshest remote
// account copy so administrative edits made while the user was away
// take effect. When the id is no longer found remotely the stale
// session stays active; it is not invalidated.
func (m *Manager) RefreshOnStartup(ctx context.Context) domain.Account {
	var stored domain.Account
	ok, err := m.cache.Get(ctx, datasync.KeySession, &stored)
	if err != nil {
		m.log.Warn("session read failed", "err", err)
	}
	if !ok || stored.ID == "" {
		return m.Current()
	}

	m.mu.Lock()
	m.current = stored
	m.mu.Unlock()

	for _, account := range m.data.FetchAccounts(ctx) {
		if account.ID == stored.ID {
			account.IsLoggedIn = true
			m.persist(ctx, account)
			break
		}
	}
	return m.Current()
}

func (m *Manager) persist(ctx context.Context, account domain.Account) {
	if err := m.cache.Put(ctx, datasync.KeySession, account); err != nil {
		m.log.Warn("session persist failed", "err", err)
	}
	m.mu.Lock()
	m.current = account
	m.mu.Unlock()
}

package session

import (
	"context"
	"testing"

	"credema/internal/datasync"
	"credema/pkg/cache"
	"credema/pkg/domain"
	"credema/pkg/store"
)

func newTestEnv(t *testing.T) (*datasync.Service, *cache.FileCache) {
	t.Helper()
	local, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("new file cache: %v", err)
	}
	return datasync.New(store.NewMemoryStore(), local, nil), local
}

func TestLoginMatchesEmailCaseInsensitively(t *testing.T) {
	data, local := newTestEnv(t)
	m := NewManager(data, local, nil)
	ctx := context.Background()

	account, ok := m.Login(ctx, "DG@CREDEMA.FINANCE")
	if !ok {
		t.Fatal("expected login to match the seeded admin")
	}
	if account.ID != "admin-dg" {
		t.Fatalf("unexpected account: %+v", account)
	}
	if !account.IsLoggedIn {
		t.Fatal("logged-in flag not set")
	}
	if current := m.Current(); current.ID != "admin-dg" || !current.IsLoggedIn {
		t.Fatalf("current identity not updated: %+v", current)
	}
}

func TestLoginMatchesExactID(t *testing.T) {
	data, local := newTestEnv(t)
	m := NewManager(data, local, nil)

	account, ok := m.Login(context.Background(), "investor-001")
	if !ok || account.Email != "daniel-grossmann@hotmail.com" {
		t.Fatalf("id login failed: ok=%v account=%+v", ok, account)
	}
}

func TestLoginRejectsUnknownIdentifier(t *testing.T) {
	data, local := newTestEnv(t)
	m := NewManager(data, local, nil)
	ctx := context.Background()

	if _, ok := m.Login(ctx, "nobody@example.com"); ok {
		t.Fatal("unknown identifier must not log in")
	}
	if _, ok := m.Login(ctx, "   "); ok {
		t.Fatal("blank identifier must not log in")
	}
	if current := m.Current(); current.IsLoggedIn {
		t.Fatalf("failed login must leave identity anonymous: %+v", current)
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	data, local := newTestEnv(t)
	ctx := context.Background()

	first := NewManager(data, local, nil)
	if _, ok := first.Login(ctx, "dg@credema.finance"); !ok {
		t.Fatal("login failed")
	}

	// A fresh manager over the same cache plays the restart.
	second := NewManager(data, local, nil)
	if second.Current().IsLoggedIn {
		t.Fatal("new manager must start anonymous")
	}
	restored := second.RefreshOnStartup(ctx)
	if restored.ID != "admin-dg" || !restored.IsLoggedIn {
		t.Fatalf("session not restored: %+v", restored)
	}
}

func TestRefreshPicksUpRemoteAccountEdits(t *testing.T) {
	data, local := newTestEnv(t)
	ctx := context.Background()

	first := NewManager(data, local, nil)
	if _, ok := first.Login(ctx, "investor-001"); !ok {
		t.Fatal("login failed")
	}

	// An admin edit lands while the user is away.
	data.UpdateAccount(ctx, domain.Account{
		ID:     "investor-001",
		Email:  "daniel-grossmann@hotmail.com",
		Name:   "Daniel Grossmann",
		Role:   domain.RoleSeedInvestor,
		Status: domain.StatusRejected,
	})

	second := NewManager(data, local, nil)
	restored := second.RefreshOnStartup(ctx)
	if restored.Status != domain.StatusRejected {
		t.Fatalf("startup refresh missed the remote edit: %+v", restored)
	}
}

func TestStaleSessionKeptWhenAccountGone(t *testing.T) {
	data, local := newTestEnv(t)
	ctx := context.Background()

	ghost := domain.Account{ID: "ghost-1", Email: "ghost@credema.finance", IsLoggedIn: true}
	if err := local.Put(ctx, datasync.KeySession, ghost); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	m := NewManager(data, local, nil)
	restored := m.RefreshOnStartup(ctx)
	if restored.ID != "ghost-1" {
		t.Fatalf("stale session should stay active, got %+v", restored)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	data, local := newTestEnv(t)
	m := NewManager(data, local, nil)
	ctx := context.Background()

	if _, ok := m.Login(ctx, "dg@credema.finance"); !ok {
		t.Fatal("login failed")
	}
	m.Logout(ctx)

	if current := m.Current(); current.IsLoggedIn || current.ID != "" {
		t.Fatalf("expected anonymous after logout, got %+v", current)
	}
	var stored domain.Account
	ok, err := local.Get(ctx, datasync.KeySession, &stored)
	if err != nil {
		t.Fatalf("cache get: %v", err)
	}
	if ok {
		t.Fatal("persisted session should be gone after logout")
	}
}

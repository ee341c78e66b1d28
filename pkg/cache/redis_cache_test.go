package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"credema/pkg/domain"
)

func TestRedisCacheRoundTrip(t *testing.T) {
	redis := miniredis.RunT(t)
	rc := NewRedisCache(redis.Addr(), "")
	ctx := context.Background()

	deals := []domain.Deal{{ID: "CD-2026-001", CompanyName: "NovaSynthetix AI"}}
	if err := rc.Put(ctx, "credema:deals:v1", deals); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got []domain.Deal
	ok, err := rc.Get(ctx, "credema:deals:v1", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after put")
	}
	if len(got) != 1 || got[0].CompanyName != "NovaSynthetix AI" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestRedisCacheMissingKey(t *testing.T) {
	redis := miniredis.RunT(t)
	rc := NewRedisCache(redis.Addr(), "")

	var got []domain.Deal
	ok, err := rc.Get(context.Background(), "credema:deals:v1", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss for never-written key")
	}
}

func TestRedisCacheDiscardsCorruptEntry(t *testing.T) {
	redis := miniredis.RunT(t)
	rc := NewRedisCache(redis.Addr(), "")
	ctx := context.Background()

	if err := redis.Set("credema:deals:v1", "{not json"); err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}

	var got []domain.Deal
	ok, err := rc.Get(ctx, "credema:deals:v1", &got)
	if err != nil {
		t.Fatalf("get corrupt: %v", err)
	}
	if ok {
		t.Fatal("corrupt entry must read as absent")
	}
	if redis.Exists("credema:deals:v1") {
		t.Fatal("corrupt entry should have been removed")
	}
}

func TestRedisCacheDelete(t *testing.T) {
	redis := miniredis.RunT(t)
	rc := NewRedisCache(redis.Addr(), "")
	ctx := context.Background()

	if err := rc.Put(ctx, "credema:session:v1", domain.Account{ID: "investor-001"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := rc.Delete(ctx, "credema:session:v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if redis.Exists("credema:session:v1") {
		t.Fatal("expected key removed")
	}
}

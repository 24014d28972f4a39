package transcache_test

import (
	"bytes"
	"context"
	"testing"

	"lyricsync/internal/transcache"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := transcache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	payload := []byte(`{"segments":[]}`)

	if _, hit, err := store.Get(ctx, "abc", "small"); err != nil || hit {
		t.Fatalf("expected miss on empty cache, hit=%v err=%v", hit, err)
	}

	if err := store.Put(ctx, "abc", "small", "en", payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	entry, hit, err := store.Get(ctx, "abc", "small")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if !bytes.Equal(entry.Payload, payload) {
		t.Fatalf("payload mismatch: %s", entry.Payload)
	}
	if entry.Language != "en" {
		t.Fatalf("language = %q", entry.Language)
	}
	if entry.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	// Different model is a different entry.
	if _, hit, err := store.Get(ctx, "abc", "large-v3"); err != nil || hit {
		t.Fatalf("expected miss for other model, hit=%v err=%v", hit, err)
	}
}

func TestStoreReplaceAndClear(t *testing.T) {
	store, err := transcache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Put(ctx, "abc", "small", "", []byte("v1")); err != nil {
		t.Fatalf("Put v1: %v", err)
	}
	if err := store.Put(ctx, "abc", "small", "de", []byte("v2")); err != nil {
		t.Fatalf("Put v2: %v", err)
	}

	entry, hit, err := store.Get(ctx, "abc", "small")
	if err != nil || !hit {
		t.Fatalf("Get after replace: hit=%v err=%v", hit, err)
	}
	if string(entry.Payload) != "v2" || entry.Language != "de" {
		t.Fatalf("expected replacement, got %q lang=%q", entry.Payload, entry.Language)
	}

	count, err := store.Count(ctx)
	if err != nil || count != 1 {
		t.Fatalf("Count = %d, err=%v", count, err)
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, hit, _ := store.Get(ctx, "abc", "small"); hit {
		t.Fatal("expected miss after clear")
	}
}

func TestStoreRejectsSecondWriter(t *testing.T) {
	dir := t.TempDir()
	store, err := transcache.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := transcache.Open(dir); err == nil {
		t.Fatal("expected second Open on same dir to fail while locked")
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := transcache.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Put(context.Background(), "abc", "small", "en", []byte("kept")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := transcache.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	entry, hit, err := reopened.Get(context.Background(), "abc", "small")
	if err != nil || !hit {
		t.Fatalf("Get after reopen: hit=%v err=%v", hit, err)
	}
	if string(entry.Payload) != "kept" {
		t.Fatalf("payload = %q", entry.Payload)
	}
}

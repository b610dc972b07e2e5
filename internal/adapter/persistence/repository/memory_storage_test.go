package repository

import (
	"context"
	"testing"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	if _, found, err := s.Get(ctx, "draft"); err != nil || found {
		t.Fatalf("expected missing key, got found=%v err=%v", found, err)
	}

	value := []byte(`{"a":1}`)
	if err := s.Set(ctx, "draft", value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	value[0] = 'x'

	got, found, err := s.Get(ctx, "draft")
	if err != nil || !found || string(got) != `{"a":1}` {
		t.Fatalf("unexpected get: %q found=%v err=%v", got, found, err)
	}

	if err := s.Delete(ctx, "draft"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found, _ := s.Get(ctx, "draft"); found {
		t.Fatalf("expected key deleted")
	}
	if err := s.Delete(ctx, "draft"); err != nil {
		t.Fatalf("deleting a missing key must not fail: %v", err)
	}
}

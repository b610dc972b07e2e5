package repository

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeCollection struct {
	docs       map[string]storeDocument
	upserts    int
	replaceErr error
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{docs: map[string]storeDocument{}}
}

func idOf(filter any) string {
	if m, ok := filter.(bson.M); ok {
		if id, ok := m["_id"].(string); ok {
			return id
		}
	}
	return ""
}

type fakeResult struct {
	doc *storeDocument
}

func (r fakeResult) Decode(v any) error {
	if r.doc == nil {
		return mongo.ErrNoDocuments
	}
	dst, ok := v.(*storeDocument)
	if !ok {
		return errors.New("unexpected decode target")
	}
	*dst = *r.doc
	return nil
}

func (f *fakeCollection) FindOne(_ context.Context, filter any) documentDecoder {
	doc, ok := f.docs[idOf(filter)]
	if !ok {
		return fakeResult{}
	}
	return fakeResult{doc: &doc}
}

func (f *fakeCollection) ReplaceOne(_ context.Context, filter, replacement any, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	for _, o := range opts {
		if o != nil && o.Upsert != nil && *o.Upsert {
			f.upserts++
		}
	}
	doc, ok := replacement.(storeDocument)
	if !ok {
		return nil, errors.New("unexpected replacement type")
	}
	if doc.Key != idOf(filter) {
		return nil, errors.New("replacement _id does not match filter")
	}
	f.docs[doc.Key] = doc
	return &mongo.UpdateResult{UpsertedCount: 1}, nil
}

func (f *fakeCollection) DeleteOne(_ context.Context, filter any, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	id := idOf(filter)
	if _, ok := f.docs[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(f.docs, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func TestMongoStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCollection()
	s := newMongoStorage(fake)

	if _, found, err := s.Get(ctx, "pedidos"); err != nil || found {
		t.Fatalf("expected missing key, got found=%v err=%v", found, err)
	}
	if err := s.Set(ctx, "pedidos", []byte(`[{"id":1700000000000}]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.upserts != 1 {
		t.Fatalf("set must upsert, got %d upserts", fake.upserts)
	}
	if fake.docs["pedidos"].UpdatedAt.IsZero() {
		t.Fatalf("expected updated_at to be stamped")
	}
	got, found, err := s.Get(ctx, "pedidos")
	if err != nil || !found || string(got) != `[{"id":1700000000000}]` {
		t.Fatalf("unexpected get: %q found=%v err=%v", got, found, err)
	}

	if err := s.Set(ctx, "pedidos", []byte(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _, _ := s.Get(ctx, "pedidos"); string(got) != `[]` {
		t.Fatalf("set must replace the document, got %q", got)
	}

	if err := s.Delete(ctx, "pedidos"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found, _ := s.Get(ctx, "pedidos"); found {
		t.Fatalf("expected key deleted")
	}
	if err := s.Delete(ctx, "pedidos"); err != nil {
		t.Fatalf("deleting a missing key must succeed: %v", err)
	}
}

func TestMongoStorage_Errors(t *testing.T) {
	fake := newFakeCollection()
	fake.replaceErr = errors.New("not primary")
	s := newMongoStorage(fake)

	if err := s.Set(context.Background(), "clientes", []byte("[]")); err == nil || err.Error() != "not primary" {
		t.Fatalf("expected not primary error, got %v", err)
	}
}

package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process DocumentStore used by tests and database-less
// local runs. Documents round-trip through bson so insert/decode semantics
// match the Mongo-backed store.
type MemoryStore struct {
	mu          sync.RWMutex
	dbName      string
	collections map[string][]bson.M
}

func NewMemoryStore(dbName string) *MemoryStore {
	return &MemoryStore{
		dbName:      dbName,
		collections: make(map[string][]bson.M),
	}
}

func toDocument(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func toFilter(v interface{}) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	if m, ok := v.(bson.M); ok {
		return m, nil
	}

	return toDocument(v)
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}

	return true
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, document interface{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := toDocument(document)
	if err != nil {
		return "", err
	}

	id, ok := doc["_id"]
	if !ok || id == primitive.NilObjectID {
		oid := primitive.NewObjectID()
		doc["_id"] = oid
		id = oid
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], doc)
	s.mu.Unlock()

	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}

	return fmt.Sprintf("%v", id), nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string, filter interface{}) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f, err := toFilter(filter)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, doc := range s.collections[collection] {
		if matches(doc, f) {
			count++
		}
	}

	return count, nil
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter interface{}, opts FindOptions, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := toFilter(filter)
	if err != nil {
		return err
	}

	s.mu.RLock()
	docs := make([]bson.M, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		if matches(doc, f) {
			docs = append(docs, doc)
		}
	}
	s.mu.RUnlock()

	applySort(docs, opts.Sort)

	if opts.Limit > 0 && int64(len(docs)) > opts.Limit {
		docs = docs[:opts.Limit]
	}

	return decodeAll(docs, out)
}

// applySort handles single-field bson.D sort documents, which is the only
// shape this backend issues.
func applySort(docs []bson.M, sortDoc interface{}) {
	d, ok := sortDoc.(bson.D)
	if !ok || len(d) != 1 {
		return
	}

	field := d[0].Key
	descending := false
	if dir, ok := d[0].Value.(int); ok && dir < 0 {
		descending = true
	}

	sort.SliceStable(docs, func(i, j int) bool {
		less := lessValue(docs[i][field], docs[j][field])
		if descending {
			return lessValue(docs[j][field], docs[i][field])
		}
		return less
	})
}

func lessValue(a, b interface{}) bool {
	// Absent fields sort first, matching Mongo's missing-before-present order.
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}

	switch av := a.(type) {
	case primitive.DateTime:
		if bv, ok := b.(primitive.DateTime); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case int32:
		if bv, ok := b.(int32); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	}

	return false
}

func decodeAll(docs []bson.M, out interface{}) error {
	outValue := reflect.ValueOf(out)
	if outValue.Kind() != reflect.Ptr || outValue.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("find results must decode into a pointer to a slice, got %T", out)
	}

	sliceValue := outValue.Elem()
	elemType := sliceValue.Type().Elem()
	decoded := reflect.MakeSlice(sliceValue.Type(), 0, len(docs))

	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}

		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}

		decoded = reflect.Append(decoded, elem.Elem())
	}

	sliceValue.Set(decoded)
	return nil
}

func (s *MemoryStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (s *MemoryStore) DatabaseName() string {
	return s.dbName
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Disconnect(ctx context.Context) error {
	return ctx.Err()
}

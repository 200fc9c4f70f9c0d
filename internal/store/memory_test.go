package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	CreatedAt *time.Time         `bson:"created_at,omitempty"`
}

func TestMemoryStore_InsertOneAssignsObjectID(t *testing.T) {
	s := NewMemoryStore("testdb")

	id, err := s.InsertOne(context.Background(), "docs", &testDoc{Email: "a@x.com"})
	require.NoError(t, err)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)
	assert.False(t, oid.IsZero())
}

func TestMemoryStore_CountWithFilter(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "a@x.com"} {
		_, err := s.InsertOne(ctx, "docs", &testDoc{Email: email})
		require.NoError(t, err)
	}

	total, err := s.Count(ctx, "docs", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	filtered, err := s.Count(ctx, "docs", bson.M{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), filtered)

	empty, err := s.Count(ctx, "missing", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty)
}

func TestMemoryStore_FindSortsAndLimits(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	emails := []string{"first@x.com", "second@x.com", "third@x.com", "fourth@x.com"}
	for i, email := range emails {
		createdAt := base.Add(time.Duration(i) * time.Minute)
		_, err := s.InsertOne(ctx, "docs", &testDoc{Email: email, CreatedAt: &createdAt})
		require.NoError(t, err)
	}

	var results []testDoc
	opts := FindOptions{
		Limit: 2,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	}
	err := s.Find(ctx, "docs", bson.M{}, opts, &results)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "fourth@x.com", results[0].Email)
	assert.Equal(t, "third@x.com", results[1].Email)
}

func TestMemoryStore_FindDecodesRoundTrip(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	createdAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	id, err := s.InsertOne(ctx, "docs", &testDoc{Email: "a@x.com", CreatedAt: &createdAt})
	require.NoError(t, err)

	var results []testDoc
	err = s.Find(ctx, "docs", bson.M{"email": "a@x.com"}, FindOptions{}, &results)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, id, results[0].ID.Hex())
	assert.Equal(t, "a@x.com", results[0].Email)
	require.NotNil(t, results[0].CreatedAt)
	// bson stores times at millisecond precision
	assert.True(t, results[0].CreatedAt.Equal(createdAt))
}

func TestMemoryStore_FindMissingSortFieldSortsLastDescending(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	createdAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	_, err := s.InsertOne(ctx, "docs", &testDoc{Email: "dated@x.com", CreatedAt: &createdAt})
	require.NoError(t, err)
	_, err = s.InsertOne(ctx, "docs", &testDoc{Email: "undated@x.com"})
	require.NoError(t, err)

	var results []testDoc
	err = s.Find(ctx, "docs", bson.M{}, FindOptions{Sort: bson.D{{Key: "created_at", Value: -1}}}, &results)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "dated@x.com", results[0].Email)
	assert.Equal(t, "undated@x.com", results[1].Email)
}

func TestMemoryStore_FindRequiresSlicePointer(t *testing.T) {
	s := NewMemoryStore("testdb")

	var notASlice testDoc
	err := s.Find(context.Background(), "docs", nil, FindOptions{}, &notASlice)
	assert.Error(t, err)
}

func TestMemoryStore_ListCollectionNames(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	names, err := s.ListCollectionNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = s.InsertOne(ctx, "waitlist", &testDoc{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = s.InsertOne(ctx, "audit", &testDoc{Email: "b@x.com"})
	require.NoError(t, err)

	names, err = s.ListCollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"audit", "waitlist"}, names)
}

func TestMemoryStore_DatabaseNameAndPing(t *testing.T) {
	s := NewMemoryStore("waitlist_db")

	assert.Equal(t, "waitlist_db", s.DatabaseName())
	assert.NoError(t, s.Ping(context.Background()))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, s.Ping(cancelled))
}

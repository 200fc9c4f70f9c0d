package waitlist

import (
	"context"
	"time"

	"github.com/akeren/waitlist-backend/internal/models"
	"github.com/akeren/waitlist-backend/internal/store"
	apperrors "github.com/akeren/waitlist-backend/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

type WaitlistRepository interface {
	// CreateEntry persists a new waitlist entry and returns its store-assigned id.
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (string, error)
	// CountEntries returns the total number of waitlist entries.
	CountEntries(ctx context.Context) (int64, error)
	// RecentEntries returns up to limit entries, newest first.
	RecentEntries(ctx context.Context, limit int64) ([]models.WaitlistEntry, error)
}

type waitlistRepository struct {
	store store.DocumentStore
}

// NewWaitlistRepository accepts a nil store; every operation then reports the
// unavailable-database condition instead of panicking, so the server can run
// degraded when the store was never configured.
func NewWaitlistRepository(documentStore store.DocumentStore) WaitlistRepository {
	return &waitlistRepository{store: documentStore}
}

func (wr *waitlistRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (string, error) {
	if wr.store == nil {
		return "", apperrors.NewDatabaseUnavailableError("Database not available")
	}

	if entry.CreatedAt == nil {
		now := time.Now().UTC()
		entry.CreatedAt = &now
	}

	id, err := wr.store.InsertOne(ctx, models.WaitlistCollection, entry)
	if err != nil {
		return "", apperrors.NewDatabaseError("unable to create waitlist entry", err)
	}

	return id, nil
}

func (wr *waitlistRepository) CountEntries(ctx context.Context) (int64, error) {
	// Explicit unavailable check before counting, so a missing store handle is
	// reported as such rather than as a generic store failure.
	if wr.store == nil {
		return 0, apperrors.NewDatabaseUnavailableError("Database not available")
	}

	count, err := wr.store.Count(ctx, models.WaitlistCollection, bson.M{})
	if err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}

	return count, nil
}

func (wr *waitlistRepository) RecentEntries(ctx context.Context, limit int64) ([]models.WaitlistEntry, error) {
	if wr.store == nil {
		return nil, apperrors.NewDatabaseUnavailableError("Database not available")
	}

	// Newest first. The store's natural order is undefined, so "recent" gets
	// an explicit created_at sort.
	opts := store.FindOptions{
		Limit: limit,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	}

	var entries []models.WaitlistEntry
	if err := wr.store.Find(ctx, models.WaitlistCollection, bson.M{}, opts, &entries); err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, nil
}

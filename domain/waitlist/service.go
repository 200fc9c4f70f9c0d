package waitlist

import (
	"context"

	"github.com/akeren/waitlist-backend/internal/log"
	apperrors "github.com/akeren/waitlist-backend/pkg/errors"
)

type WaitlistService interface {
	// CreateEntry records a signup and returns the new entry's id with the
	// fixed confirmation message.
	CreateEntry(ctx context.Context, req *CreateWaitlistEntryRequest) (*CreateWaitlistEntryResponse, error)

	// CountEntries returns the total number of waitlist signups.
	CountEntries(ctx context.Context) (*WaitlistCountResponse, error)

	// RecentEntries returns up to limit entries with anonymized emails.
	RecentEntries(ctx context.Context, limit int64) (*RecentWaitlistEntriesResponse, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository) WaitlistService {
	return &waitlistService{logger: logger, repository: repository}
}

func (s *waitlistService) CreateEntry(ctx context.Context, req *CreateWaitlistEntryRequest) (*CreateWaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateEntry received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	id, err := s.repository.CreateEntry(ctx, ToWaitlistEntryModel(req))
	if err != nil {
		logger.Error("Failed to create waitlist entry", "error", err)
		return nil, err
	}

	return &CreateWaitlistEntryResponse{
		ID:      id,
		Message: WaitlistConfirmationMessage,
	}, nil
}

func (s *waitlistService) CountEntries(ctx context.Context) (*WaitlistCountResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	count, err := s.repository.CountEntries(ctx)
	if err != nil {
		logger.Error("Failed to count waitlist entries", "error", err)
		return nil, err
	}

	return &WaitlistCountResponse{Count: count}, nil
}

func (s *waitlistService) RecentEntries(ctx context.Context, limit int64) (*RecentWaitlistEntriesResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	entries, err := s.repository.RecentEntries(ctx, limit)
	if err != nil {
		logger.Error("Failed to fetch recent waitlist entries", "error", err)
		return nil, err
	}

	items := make([]RecentWaitlistEntry, 0, len(entries))
	for i := range entries {
		items = append(items, ToRecentWaitlistEntry(&entries[i]))
	}

	return &RecentWaitlistEntriesResponse{Items: items}, nil
}

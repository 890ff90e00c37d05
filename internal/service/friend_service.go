package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/models"
	"github.com/splithappens/splithappens/internal/storage"
)

// FriendService manages the directed friend graph. Friend edges only gate
// visibility in the UI; the ledger's math never consults them.
type FriendService struct {
	store   storage.Store
	timeout time.Duration
}

// NewFriendService creates a FriendService with the given storage backend.
func NewFriendService(store storage.Store, timeout time.Duration) *FriendService {
	return &FriendService{store: store, timeout: timeout}
}

// Request creates a pending owner->friend edge. The reverse edge is never
// created implicitly; a reciprocal relationship takes two requests.
func (s *FriendService) Request(ctx context.Context, ownerID, friendID string) (*models.FriendEdge, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	if friendID == "" {
		return nil, apperr.Validationf("friend_id is required")
	}
	if ownerID == friendID {
		return nil, apperr.Validationf("cannot friend yourself")
	}

	if _, err := s.store.GetMemberByID(ctx, friendID); err != nil {
		return nil, err
	}

	edge := &models.FriendEdge{
		OwnerID:  ownerID,
		FriendID: friendID,
		Status:   models.FriendPending,
	}
	if err := s.store.CreateFriendEdge(ctx, edge); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflictf("friend already added")
		}
		return nil, err
	}

	slog.Info("Friend requested", "owner_id", ownerID, "friend_id", friendID)
	return edge, nil
}

// Accept transitions the owner->friend edge from pending to accepted.
func (s *FriendService) Accept(ctx context.Context, ownerID, friendID string) error {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.AcceptFriendEdge(ctx, ownerID, friendID); err != nil {
		return err
	}
	slog.Info("Friend accepted", "owner_id", ownerID, "friend_id", friendID)
	return nil
}

// ListFriends returns the owner's friends. Pending edges are included
// only when includePending is set.
func (s *FriendService) ListFriends(ctx context.Context, ownerID string, includePending bool) ([]models.Friend, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	return s.store.ListFriends(ctx, ownerID, includePending)
}

// SearchMembers finds members by display-name prefix for the add-friend
// flow, excluding the searcher.
func (s *FriendService) SearchMembers(ctx context.Context, prefix, selfID string) ([]models.Member, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	return s.store.SearchMembers(ctx, prefix, selfID)
}

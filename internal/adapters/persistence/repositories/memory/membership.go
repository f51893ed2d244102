package memory

import (
	"context"
	"sort"
	"sync"
)

// MembershipRepository is an in-memory membership ledger. A single
// mutex guards every edge mutation, so each join/leave is atomic with
// respect to concurrent calls on the same (user, club) key.
type MembershipRepository struct {
	mu      sync.RWMutex
	byClub  map[string]map[string]bool // clubID -> userID set
	byUser  map[string]map[string]bool // userID -> clubID set
	ordinal map[[2]string]int          // insertion order for stable listings
	next    int
}

// NewMembershipRepository creates an empty in-memory ledger.
func NewMembershipRepository() *MembershipRepository {
	return &MembershipRepository{
		byClub:  make(map[string]map[string]bool),
		byUser:  make(map[string]map[string]bool),
		ordinal: make(map[[2]string]int),
	}
}

func (r *MembershipRepository) Join(ctx context.Context, userID, clubID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byClub[clubID] == nil {
		r.byClub[clubID] = make(map[string]bool)
	}
	if r.byUser[userID] == nil {
		r.byUser[userID] = make(map[string]bool)
	}
	if !r.byClub[clubID][userID] {
		r.byClub[clubID][userID] = true
		r.byUser[userID][clubID] = true
		r.ordinal[[2]string{userID, clubID}] = r.next
		r.next++
	}
	return nil
}

func (r *MembershipRepository) Leave(ctx context.Context, userID, clubID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byClub[clubID], userID)
	delete(r.byUser[userID], clubID)
	delete(r.ordinal, [2]string{userID, clubID})
	return nil
}

func (r *MembershipRepository) IsMember(ctx context.Context, userID, clubID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byClub[clubID][userID], nil
}

func (r *MembershipRepository) MembersOf(ctx context.Context, clubID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userIDs := make([]string, 0, len(r.byClub[clubID]))
	for userID := range r.byClub[clubID] {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool {
		return r.ordinal[[2]string{userIDs[i], clubID}] < r.ordinal[[2]string{userIDs[j], clubID}]
	})
	return userIDs, nil
}

func (r *MembershipRepository) ClubsOf(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clubIDs := make([]string, 0, len(r.byUser[userID]))
	for clubID := range r.byUser[userID] {
		clubIDs = append(clubIDs, clubID)
	}
	sort.Slice(clubIDs, func(i, j int) bool {
		return r.ordinal[[2]string{userID, clubIDs[i]}] < r.ordinal[[2]string{userID, clubIDs[j]}]
	})
	return clubIDs, nil
}

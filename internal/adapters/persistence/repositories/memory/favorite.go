package memory

import (
	"context"
	"sort"
	"sync"
)

// FavoriteRepository is an in-memory favorites set.
type FavoriteRepository struct {
	mu      sync.RWMutex
	byUser  map[string]map[string]bool // userID -> clubID set
	ordinal map[[2]string]int
	next    int
}

// NewFavoriteRepository creates an empty in-memory favorites repository.
func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{
		byUser:  make(map[string]map[string]bool),
		ordinal: make(map[[2]string]int),
	}
}

// Toggle flips the favorite edge under the store lock, so concurrent
// double-taps settle on a valid state.
func (r *FavoriteRepository) Toggle(ctx context.Context, userID, clubID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byUser[userID] == nil {
		r.byUser[userID] = make(map[string]bool)
	}
	key := [2]string{userID, clubID}
	if r.byUser[userID][clubID] {
		delete(r.byUser[userID], clubID)
		delete(r.ordinal, key)
		return false, nil
	}
	r.byUser[userID][clubID] = true
	r.ordinal[key] = r.next
	r.next++
	return true, nil
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, clubID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byUser[userID][clubID], nil
}

func (r *FavoriteRepository) ClubIDsOf(ctx context.Context, userID string) ([]string, error) {
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

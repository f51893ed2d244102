package repositories

import (
	"context"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// membershipRepository implements MembershipRepository interface.
// Mutations are single-statement upserts/deletes, so concurrent
// join/leave calls on the same edge cannot lose updates.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership ledger repository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// Join adds the (user, club) edge; a no-op if it already exists
func (r *membershipRepository) Join(ctx context.Context, userID, clubID string) error {
	edge := &models.Membership{UserID: userID, ClubID: clubID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(edge).Error
}

// Leave removes the (user, club) edge; a no-op if it is absent
func (r *membershipRepository) Leave(ctx context.Context, userID, clubID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Delete(&models.Membership{}).Error
}

// IsMember reports whether the edge exists
func (r *membershipRepository) IsMember(ctx context.Context, userID, clubID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Membership{}).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Count(&count).Error
	return count > 0, err
}

// MembersOf returns the user ids joined to a club
func (r *membershipRepository) MembersOf(ctx context.Context, clubID string) ([]string, error) {
	var userIDs []string
	err := r.db.WithContext(ctx).Model(&models.Membership{}).
		Where("club_id = ?", clubID).
		Order("created_at ASC").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}

// ClubsOf returns the club ids a user has joined
func (r *membershipRepository) ClubsOf(ctx context.Context, userID string) ([]string, error) {
	var clubIDs []string
	err := r.db.WithContext(ctx).Model(&models.Membership{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("club_id", &clubIDs).Error
	if err != nil {
		return nil, err
	}
	return clubIDs, nil
}

package repositories

import (
	"context"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements FavoriteRepository interface
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorites repository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Toggle flips the favorite edge inside a transaction: the delete and
// the conditional insert see a consistent view, so racing double-taps
// settle on one of the two valid states instead of erroring.
func (r *favoriteRepository) Toggle(ctx context.Context, userID, clubID string) (bool, error) {
	var favorited bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND club_id = ?", userID, clubID).
			Delete(&models.UserFavorite{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			favorited = false
			return nil
		}

		edge := &models.UserFavorite{
			ID:     userID + "-" + clubID,
			UserID: userID,
			ClubID: clubID,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error; err != nil {
			return err
		}
		favorited = true
		return nil
	})
	return favorited, err
}

// IsFavorite reports whether the user has favorited the club
func (r *favoriteRepository) IsFavorite(ctx context.Context, userID, clubID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserFavorite{}).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Count(&count).Error
	return count > 0, err
}

// ClubIDsOf returns the club ids the user has favorited
func (r *favoriteRepository) ClubIDsOf(ctx context.Context, userID string) ([]string, error) {
	var clubIDs []string
	err := r.db.WithContext(ctx).Model(&models.UserFavorite{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("club_id", &clubIDs).Error
	if err != nil {
		return nil, err
	}
	return clubIDs, nil
}

package services

import (
	"context"
	"errors"
	"log"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// FavoriteService handles the per-user favorites set
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	clubRepo     repositories.ClubRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	clubRepo repositories.ClubRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		clubRepo:     clubRepo,
	}
}

// Toggle flips the favorite flag for (user, club) and returns the
// resulting state. The flip is atomic: concurrent toggles serialize
// to alternating states, never duplicate rows.
func (s *FavoriteService) Toggle(ctx context.Context, userID, clubID string) (bool, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrClubNotFound
		}
		return false, err
	}

	favorited, err := s.favoriteRepo.Toggle(ctx, userID, clubID)
	if err != nil {
		return false, err
	}

	if favorited {
		log.Printf("✅ User %s favorited club %s", userID, clubID)
	} else {
		log.Printf("✅ User %s unfavorited club %s", userID, clubID)
	}
	return favorited, nil
}

// IsFavorite reports whether the club is in the user's favorites
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, clubID string) (bool, error) {
	return s.favoriteRepo.IsFavorite(ctx, userID, clubID)
}

// ListFavorites returns the user's favorited clubs as catalog views
func (s *FavoriteService) ListFavorites(ctx context.Context, userID string) ([]*models.ClubResponse, error) {
	clubIDs, err := s.favoriteRepo.ClubIDsOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	clubs := make([]*models.ClubResponse, 0, len(clubIDs))
	for _, clubID := range clubIDs {
		club, err := s.clubRepo.GetByID(ctx, clubID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		clubs = append(clubs, club.ToResponse())
	}
	return clubs, nil
}

package services

import (
	"context"
	"errors"
	"log"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// MembershipService handles the membership ledger business logic.
// The ledger is the authority on who belongs to a club; the catalog's
// member_count column is a display figure only.
type MembershipService struct {
	membershipRepo repositories.MembershipRepository
	clubRepo       repositories.ClubRepository
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	membershipRepo repositories.MembershipRepository,
	clubRepo repositories.ClubRepository,
) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		clubRepo:       clubRepo,
	}
}

// ClubMembers is the roster view for a single club
type ClubMembers struct {
	ClubID  string   `json:"club_id"`
	Count   int      `json:"count"`
	UserIDs []string `json:"user_ids"`
}

// Join adds the user to a club. Joining again is a no-op; concurrent
// joins collapse to a single membership row.
func (s *MembershipService) Join(ctx context.Context, userID, clubID string) error {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClubNotFound
		}
		return err
	}

	if err := s.membershipRepo.Join(ctx, userID, clubID); err != nil {
		return err
	}

	log.Printf("✅ User %s joined club %s", userID, clubID)
	return nil
}

// Leave removes the user from a club. Leaving a club the user never
// joined is a no-op.
func (s *MembershipService) Leave(ctx context.Context, userID, clubID string) error {
	if err := s.membershipRepo.Leave(ctx, userID, clubID); err != nil {
		return err
	}
	log.Printf("✅ User %s left club %s", userID, clubID)
	return nil
}

// IsMember reports whether the user currently belongs to the club
func (s *MembershipService) IsMember(ctx context.Context, userID, clubID string) (bool, error) {
	return s.membershipRepo.IsMember(ctx, userID, clubID)
}

// MembersOf returns the roster of a club, oldest member first
func (s *MembershipService) MembersOf(ctx context.Context, clubID string) (*ClubMembers, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}

	userIDs, err := s.membershipRepo.MembersOf(ctx, clubID)
	if err != nil {
		return nil, err
	}

	return &ClubMembers{
		ClubID:  clubID,
		Count:   len(userIDs),
		UserIDs: userIDs,
	}, nil
}

// ClubsOf returns the clubs a user has joined, as full catalog views
func (s *MembershipService) ClubsOf(ctx context.Context, userID string) ([]*models.ClubResponse, error) {
	clubIDs, err := s.membershipRepo.ClubsOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	clubs := make([]*models.ClubResponse, 0, len(clubIDs))
	for _, clubID := range clubIDs {
		club, err := s.clubRepo.GetByID(ctx, clubID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// club deleted since the join; cascade lag, skip it
				continue
			}
			return nil, err
		}
		clubs = append(clubs, club.ToResponse())
	}
	return clubs, nil
}

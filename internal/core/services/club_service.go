package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/domain"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/pkg/patch"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Club errors
var (
	ErrClubNotFound = errors.New("club not found")
	ErrNotClubOwner = errors.New("not authorized to manage this club")
)

// ClubService handles club catalog business logic
type ClubService struct {
	clubRepo repositories.ClubRepository
}

// NewClubService creates a new club service
func NewClubService(clubRepo repositories.ClubRepository) *ClubService {
	return &ClubService{clubRepo: clubRepo}
}

// SocialMediaInput carries partial social link updates; nil fields
// are left untouched.
type SocialMediaInput struct {
	Instagram *string `json:"instagram"`
	Discord   *string `json:"discord"`
	Website   *string `json:"website"`
}

// EventInput represents an event in a replace-all update
type EventInput struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    *string `json:"location"`
}

// UpdateClubInput represents the editable subset of a club profile.
// Pointer fields distinguish "absent" from "set"; ImageURL further
// distinguishes null (clear the image) from omitted (keep it).
type UpdateClubInput struct {
	Description *string           `json:"description"`
	ImageURL    patch.String      `json:"image_url"`
	SocialMedia *SocialMediaInput `json:"social_media"`
	Events      *[]EventInput     `json:"events"`
	Portfolios  *[]string         `json:"portfolios"`
}

// GetAll lists clubs with optional category/search filters
func (s *ClubService) GetAll(ctx context.Context, filter repositories.ClubFilter, offset, limit int) ([]*models.ClubResponse, int64, error) {
	clubs, total, err := s.clubRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		responses = append(responses, club.ToResponse())
	}
	return responses, total, nil
}

// GetByID gets a single club as the denormalized client view
func (s *ClubService) GetByID(ctx context.Context, id string) (*models.ClubResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return club.ToResponse(), nil
}

// Update applies a partial edit to a club profile. Super admins may
// edit any club; admins only the club they own. Events and portfolios
// are replace-all: a provided list fully supersedes the stored one.
func (s *ClubService) Update(ctx context.Context, clubID string, input *UpdateClubInput, actor *models.User) (*models.ClubResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}

	if !s.canManage(actor, club) {
		return nil, ErrNotClubOwner
	}

	if input.Description != nil {
		club.Description = *input.Description
	}
	if input.ImageURL.Defined {
		club.ImageURL = input.ImageURL.Value
	}
	if input.SocialMedia != nil {
		if input.SocialMedia.Instagram != nil {
			club.InstagramURL = input.SocialMedia.Instagram
		}
		if input.SocialMedia.Discord != nil {
			club.DiscordURL = input.SocialMedia.Discord
		}
		if input.SocialMedia.Website != nil {
			club.WebsiteURL = input.SocialMedia.Website
		}
	}

	if err := s.clubRepo.Save(ctx, club); err != nil {
		return nil, err
	}

	if input.Events != nil {
		events := make([]models.ClubEvent, 0, len(*input.Events))
		for _, e := range *input.Events {
			id := e.ID
			if id == "" {
				id = uuid.New().String()
			}
			events = append(events, models.ClubEvent{
				ID:          id,
				ClubID:      club.ID,
				Title:       e.Title,
				Description: e.Description,
				Date:        e.Date,
				Location:    e.Location,
			})
		}
		if err := s.clubRepo.ReplaceEvents(ctx, club.ID, events); err != nil {
			return nil, err
		}
	}

	if input.Portfolios != nil {
		portfolios := make([]models.ClubPortfolio, 0, len(*input.Portfolios))
		for _, url := range *input.Portfolios {
			portfolios = append(portfolios, models.ClubPortfolio{
				ID:     uuid.New().String(),
				ClubID: club.ID,
				URL:    url,
			})
		}
		if err := s.clubRepo.ReplacePortfolios(ctx, club.ID, portfolios); err != nil {
			return nil, err
		}
	}

	updated, err := s.clubRepo.GetByID(ctx, club.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Club updated: %s by %s", club.Name, actor.Email)
	return updated.ToResponse(), nil
}

// UpcomingMeetings lists non-cancelled meetings from today onward,
// across all clubs, soonest first.
func (s *ClubService) UpcomingMeetings(ctx context.Context, limit int) ([]*models.ClubMeeting, error) {
	today := time.Now().Format("2006-01-02")
	return s.clubRepo.ListUpcomingMeetings(ctx, today, limit)
}

// canManage reports whether the actor may edit the club. Ownership is
// either a user-to-club assignment or a president email match.
func (s *ClubService) canManage(actor *models.User, club *models.Club) bool {
	if actor.Role == string(domain.RoleSuperAdmin) {
		return true
	}
	if actor.Role != string(domain.RoleAdmin) {
		return false
	}
	if actor.ClubID != nil && *actor.ClubID == club.ID {
		return true
	}
	return strings.EqualFold(club.PresidentEmail, actor.Email)
}

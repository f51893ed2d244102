package repositories

import (
	"context"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// ClubFilter narrows club catalog listings
type ClubFilter struct {
	Category string // exact match; empty or "All" means no filter
	Search   string // case-insensitive name substring
}

// ClubRepository defines club catalog repository interface
type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	GetByID(ctx context.Context, id string) (*models.Club, error)
	List(ctx context.Context, filter ClubFilter, offset, limit int) ([]*models.Club, int64, error)
	Save(ctx context.Context, club *models.Club) error
	ReplaceEvents(ctx context.Context, clubID string, events []models.ClubEvent) error
	ReplacePortfolios(ctx context.Context, clubID string, portfolios []models.ClubPortfolio) error
	ListUpcomingMeetings(ctx context.Context, fromDate string, limit int) ([]*models.ClubMeeting, error)
}

// MembershipRepository defines the membership ledger interface.
// Join and Leave are idempotent and atomic per (user, club) edge.
type MembershipRepository interface {
	Join(ctx context.Context, userID, clubID string) error
	Leave(ctx context.Context, userID, clubID string) error
	IsMember(ctx context.Context, userID, clubID string) (bool, error)
	MembersOf(ctx context.Context, clubID string) ([]string, error)
	ClubsOf(ctx context.Context, userID string) ([]string, error)
}

// FavoriteRepository defines the favorites set interface.
// Toggle is a race-safe boolean flip of the (user, club) edge.
type FavoriteRepository interface {
	Toggle(ctx context.Context, userID, clubID string) (favorited bool, err error)
	IsFavorite(ctx context.Context, userID, clubID string) (bool, error)
	ClubIDsOf(ctx context.Context, userID string) ([]string, error)
}

// NotificationRepository defines the admin approval queue interface.
// ApproveAdmin applies both halves of the approval (user flag and
// notification read mark) atomically.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.AdminNotification) error
	GetByID(ctx context.Context, id string) (*models.AdminNotification, error)
	ListUnread(ctx context.Context) ([]*models.AdminNotification, error)
	CountUnread(ctx context.Context) (int64, error)
	ApproveAdmin(ctx context.Context, userID, notificationID string) error
}

package models

import (
	"time"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/domain"
	"gorm.io/gorm"
)

// ============================================================
// Identity tables
// ============================================================

// User represents the users table
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:'student'" json:"role"`
	IsApproved   bool      `gorm:"not null;default:false" json:"is_approved"`
	ClubID       *string   `gorm:"size:36;index" json:"club_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsStudent reports whether the user holds the student role.
func (u *User) IsStudent() bool { return u.Role == string(domain.RoleStudent) }

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == string(domain.RoleAdmin) }

// IsSuperAdmin reports whether the user holds the super_admin role.
func (u *User) IsSuperAdmin() bool { return u.Role == string(domain.RoleSuperAdmin) }

// UserResponse DTO
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
	ClubID     *string   `json:"club_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		IsApproved: u.IsApproved,
		ClubID:     u.ClubID,
		CreatedAt:  u.CreatedAt,
	}
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    string     `gorm:"size:36;index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Club catalog tables
// ============================================================

// Club represents the clubs table. MemberCount is the seeded catalog
// figure; the memberships ledger is authoritative for live counts.
type Club struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Name             string    `gorm:"size:100;not null;index" json:"name"`
	Description      string    `gorm:"type:text;not null" json:"description"`
	Category         string    `gorm:"size:30;not null;index" json:"category"`
	AdvisorName      string    `gorm:"size:100;not null" json:"advisor_name"`
	PresidentName    string    `gorm:"size:100;not null" json:"president_name"`
	PresidentEmail   string    `gorm:"size:100;not null;index" json:"president_email"`
	Email            string    `gorm:"size:100;not null" json:"email"`
	MeetingFrequency string    `gorm:"size:20;not null" json:"meeting_frequency"`
	MeetingDay       *string   `gorm:"size:20" json:"meeting_day"`
	MeetingTime      *string   `gorm:"size:20" json:"meeting_time"`
	MeetingLocation  *string   `gorm:"size:100" json:"meeting_location"`
	ImageURL         *string   `gorm:"size:500" json:"image_url"`
	MemberCount      int       `gorm:"not null;default:0" json:"member_count"`
	YearFounded      int       `gorm:"not null;default:0" json:"year_founded"`
	Requirements     *string   `gorm:"type:text" json:"requirements"`
	InstagramURL     *string   `gorm:"size:255" json:"instagram_url"`
	DiscordURL       *string   `gorm:"size:255" json:"discord_url"`
	WebsiteURL       *string   `gorm:"size:255" json:"website_url"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations (club-scoped rows cascade with their parent)
	Tags       []ClubTag       `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Meetings   []ClubMeeting   `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE" json:"meetings,omitempty"`
	Events     []ClubEvent     `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
	Portfolios []ClubPortfolio `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE" json:"portfolios,omitempty"`
}

func (Club) TableName() string {
	return "clubs"
}

// ClubTag represents the club_tags table
type ClubTag struct {
	ID     string `gorm:"primaryKey;size:72" json:"id"`
	ClubID string `gorm:"size:36;not null;index" json:"club_id"`
	Tag    string `gorm:"size:50;not null" json:"tag"`
}

func (ClubTag) TableName() string {
	return "club_tags"
}

// ClubMeeting represents the club_meetings table.
// Cancelled is a soft flag; meeting rows are never physically removed.
type ClubMeeting struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ClubID      string    `gorm:"size:36;not null;index" json:"club_id"`
	Date        string    `gorm:"size:10;not null;index" json:"date"` // ISO date, e.g. "2026-09-14"
	StartTime   string    `gorm:"size:5;not null" json:"start_time"`  // "14:30"
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`    // "16:00"
	Location    string    `gorm:"size:100;not null" json:"location"`
	Description *string   `gorm:"type:text" json:"description"`
	Cancelled   bool      `gorm:"not null;default:false" json:"cancelled"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ClubMeeting) TableName() string {
	return "club_meetings"
}

// ClubEvent represents the club_events table
type ClubEvent struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ClubID      string    `gorm:"size:36;not null;index" json:"club_id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        string    `gorm:"size:10;not null" json:"date"`
	Location    *string   `gorm:"size:100" json:"location"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ClubEvent) TableName() string {
	return "club_events"
}

// ClubPortfolio represents the club_portfolios table (showcase links)
type ClubPortfolio struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	ClubID string `gorm:"size:36;not null;index" json:"club_id"`
	URL    string `gorm:"size:500;not null" json:"url"`
}

func (ClubPortfolio) TableName() string {
	return "club_portfolios"
}

// ============================================================
// Relational edges
// ============================================================

/// Membership represents the memberships table: one row per joined
// (user, club) pair. The composite primary key keeps the edge unique.
type Membership struct {
	UserID    string    `gorm:"primaryKey;size:36" json:"user_id"`
	ClubID    string    `gorm:"primaryKey;size:36" json:"club_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Club      Club      `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Membership) TableName() string {
	return "memberships"
}

// UserFavorite represents the user_favorites table
type UserFavorite struct {
	ID        string    `gorm:"primaryKey;size:73" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_favorite_edge" json:"user_id"`
	ClubID    string    `gorm:"size:36;not null;uniqueIndex:idx_favorite_edge" json:"club_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Club      Club      `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserFavorite) TableName() string {
	return "user_favorites"
}

// ============================================================
// Approval queue
// ============================================================

// AdminNotification represents the admin_notifications table.
// Read is one-directional: pending (false) -> processed (true).
type AdminNotification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Type      string    `gorm:"size:30;not null" json:"type"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	UserName  string    `gorm:"size:100;not null" json:"user_name"`
	UserEmail string    `gorm:"size:100;not null" json:"user_email"`
	ClubID    *string   `gorm:"size:36" json:"club_id"`
	ClubName  *string   `gorm:"size:100" json:"club_name"`
	Read      bool      `gorm:"not null;default:false;index" json:"read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AdminNotification) TableName() string {
	return "admin_notifications"
}

// ============================================================
// Denormalized view DTOs
// ============================================================

// SocialMedia groups a club's external links for display
type SocialMedia struct {
	Instagram *string `json:"instagram,omitempty"`
	Discord   *string `json:"discord,omitempty"`
	Website   *string `json:"website,omitempty"`
}

// ClubResponse is the denormalized club view the clients render
type ClubResponse struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Category         string         `json:"category"`
	Tags             []string       `json:"tags"`
	AdvisorName      string         `json:"advisor_name"`
	PresidentName    string         `json:"president_name"`
	PresidentEmail   string         `json:"president_email"`
	Email            string         `json:"email"`
	MeetingFrequency string         `json:"meeting_frequency"`
	MeetingDay       *string        `json:"meeting_day,omitempty"`
	MeetingTime      *string        `json:"meeting_time,omitempty"`
	MeetingLocation  *string        `json:"meeting_location,omitempty"`
	ImageURL         *string        `json:"image_url"`
	MemberCount      int            `json:"member_count"`
	YearFounded      int            `json:"year_founded"`
	Requirements     *string        `json:"requirements,omitempty"`
	SocialMedia      SocialMedia    `json:"social_media"`
	UpcomingMeetings []*ClubMeeting `json:"upcoming_meetings"`
	Events           []*ClubEvent   `json:"events"`
	Portfolios       []string       `json:"portfolios"`
}

// ToResponse builds the denormalized view from a club and its
// preloaded relations.
func (c *Club) ToResponse() *ClubResponse {
	resp := &ClubResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		Category:         c.Category,
		Tags:             make([]string, 0, len(c.Tags)),
		AdvisorName:      c.AdvisorName,
		PresidentName:    c.PresidentName,
		PresidentEmail:   c.PresidentEmail,
		Email:            c.Email,
		MeetingFrequency: c.MeetingFrequency,
		MeetingDay:       c.MeetingDay,
		MeetingTime:      c.MeetingTime,
		MeetingLocation:  c.MeetingLocation,
		ImageURL:         c.ImageURL,
		MemberCount:      c.MemberCount,
		YearFounded:      c.YearFounded,
		Requirements:     c.Requirements,
		SocialMedia: SocialMedia{
			Instagram: c.InstagramURL,
			Discord:   c.DiscordURL,
			Website:   c.WebsiteURL,
		},
		UpcomingMeetings: make([]*ClubMeeting, 0, len(c.Meetings)),
		Events:           make([]*ClubEvent, 0, len(c.Events)),
		Portfolios:       make([]string, 0, len(c.Portfolios)),
	}

	for _, t := range c.Tags {
		resp.Tags = append(resp.Tags, t.Tag)
	}
	for i := range c.Meetings {
		if !c.Meetings[i].Cancelled {
			resp.UpcomingMeetings = append(resp.UpcomingMeetings, &c.Meetings[i])
		}
	}
	for i := range c.Events {
		resp.Events = append(resp.Events, &c.Events[i])
	}
	for _, p := range c.Portfolios {
		resp.Portfolios = append(resp.Portfolios, p.URL)
	}

	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Club{},
		&ClubTag{},
		&ClubMeeting{},
		&ClubEvent{},
		&ClubPortfolio{},
		&Membership{},
		&UserFavorite{},
		&AdminNotification{},
	)
}

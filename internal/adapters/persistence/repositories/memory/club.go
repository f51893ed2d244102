package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// ClubRepository is an in-memory club catalog.
type ClubRepository struct {
	mu    sync.RWMutex
	clubs map[string]*models.Club
}

// NewClubRepository creates an empty in-memory club repository.
func NewClubRepository() *ClubRepository {
	return &ClubRepository{clubs: make(map[string]*models.Club)}
}

func copyClub(c *models.Club) *models.Club {
	cp := *c
	cp.Tags = append([]models.ClubTag(nil), c.Tags...)
	cp.Meetings = append([]models.ClubMeeting(nil), c.Meetings...)
	cp.Events = append([]models.ClubEvent(nil), c.Events...)
	cp.Portfolios = append([]models.ClubPortfolio(nil), c.Portfolios...)
	return &cp
}

func (r *ClubRepository) Create(ctx context.Context, club *models.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clubs[club.ID] = copyClub(club)
	return nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (*models.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	club, ok := r.clubs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return copyClub(club), nil
}

func (r *ClubRepository) List(ctx context.Context, filter repositories.ClubFilter, offset, limit int) ([]*models.Club, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Club
	search := strings.ToLower(filter.Search)
	for _, club := range r.clubs {
		if filter.Category != "" && filter.Category != "All" && club.Category != filter.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(club.Name), search) {
			continue
		}
		matched = append(matched, copyClub(club))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *ClubRepository) Save(ctx context.Context, club *models.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.clubs[club.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	// Column save only: relation slices keep their stored values.
	updated := copyClub(existing)
	updated.Name = club.Name
	updated.Description = club.Description
	updated.Category = club.Category
	updated.AdvisorName = club.AdvisorName
	updated.PresidentName = club.PresidentName
	updated.PresidentEmail = club.PresidentEmail
	updated.Email = club.Email
	updated.MeetingFrequency = club.MeetingFrequency
	updated.MeetingDay = club.MeetingDay
	updated.MeetingTime = club.MeetingTime
	updated.MeetingLocation = club.MeetingLocation
	updated.ImageURL = club.ImageURL
	updated.MemberCount = club.MemberCount
	updated.YearFounded = club.YearFounded
	updated.Requirements = club.Requirements
	updated.InstagramURL = club.InstagramURL
	updated.DiscordURL = club.DiscordURL
	updated.WebsiteURL = club.WebsiteURL
	r.clubs[club.ID] = updated
	return nil
}

func (r *ClubRepository) ReplaceEvents(ctx context.Context, clubID string, events []models.ClubEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	club, ok := r.clubs[clubID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	club.Events = append([]models.ClubEvent(nil), events...)
	return nil
}

func (r *ClubRepository) ReplacePortfolios(ctx context.Context, clubID string, portfolios []models.ClubPortfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	club, ok := r.clubs[clubID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	club.Portfolios = append([]models.ClubPortfolio(nil), portfolios...)
	return nil
}

func (r *ClubRepository) ListUpcomingMeetings(ctx context.Context, fromDate string, limit int) ([]*models.ClubMeeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var meetings []*models.ClubMeeting
	for _, club := range r.clubs {
		for i := range club.Meetings {
			m := club.Meetings[i]
			if m.Cancelled || m.Date < fromDate {
				continue
			}
			cp := m
			meetings = append(meetings, &cp)
		}
	}

	sort.Slice(meetings, func(i, j int) bool {
		if meetings[i].Date != meetings[j].Date {
			return meetings[i].Date < meetings[j].Date
		}
		return meetings[i].StartTime < meetings[j].StartTime
	})

	if limit > 0 && limit < len(meetings) {
		meetings = meetings[:limit]
	}
	return meetings, nil
}

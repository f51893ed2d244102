package repositories

import (
	"context"
	"strings"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// clubRepository implements ClubRepository interface
type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

// withRelations preloads the club-scoped rows used by the
// denormalized view
func (r *clubRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Meetings", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, start_time ASC")
		}).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		Preload("Portfolios")
}

// Create creates a club with its relations (used by seeding)
func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

// GetByID gets a club and its relations
func (r *clubRepository) GetByID(ctx context.Context, id string) (*models.Club, error) {
	var club models.Club
	err := r.withRelations(ctx).Where("id = ?", id).First(&club).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// applyFilter adds the optional category and name-substring conditions
func applyFilter(db *gorm.DB, filter ClubFilter) *gorm.DB {
	if filter.Category != "" && filter.Category != "All" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	return db
}

// List lists clubs ordered by name, with optional category and
// name-substring filters
func (r *clubRepository) List(ctx context.Context, filter ClubFilter, offset, limit int) ([]*models.Club, int64, error) {
	var clubs []*models.Club
	var total int64

	if err := applyFilter(r.db.WithContext(ctx).Model(&models.Club{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyFilter(r.withRelations(ctx), filter).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&clubs).Error
	if err != nil {
		return nil, 0, err
	}

	return clubs, total, nil
}

// Save persists changes to the club's own columns
func (r *clubRepository) Save(ctx context.Context, club *models.Club) error {
	return r.db.WithContext(ctx).Omit("Tags", "Meetings", "Events", "Portfolios").Save(club).Error
}

// ReplaceEvents swaps the club's event list in one transaction
func (r *clubRepository) ReplaceEvents(ctx context.Context, clubID string, events []models.ClubEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", clubID).Delete(&models.ClubEvent{}).Error; err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}
		return tx.Create(&events).Error
	})
}

// ReplacePortfolios swaps the club's portfolio links in one transaction
func (r *clubRepository) ReplacePortfolios(ctx context.Context, clubID string, portfolios []models.ClubPortfolio) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", clubID).Delete(&models.ClubPortfolio{}).Error; err != nil {
			return err
		}
		if len(portfolios) == 0 {
			return nil
		}
		return tx.Create(&portfolios).Error
	})
}

// ListUpcomingMeetings returns non-cancelled meetings on or after
// fromDate, soonest first
func (r *clubRepository) ListUpcomingMeetings(ctx context.Context, fromDate string, limit int) ([]*models.ClubMeeting, error) {
	var meetings []*models.ClubMeeting
	err := r.db.WithContext(ctx).
		Where("cancelled = ? AND date >= ?", false, fromDate).
		Order("date ASC, start_time ASC").
		Limit(limit).
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

package repositories

import (
	"context"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// notificationRepository implements NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create enqueues an approval notification
func (r *notificationRepository) Create(ctx context.Context, n *models.AdminNotification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// GetByID gets a notification by ID
func (r *notificationRepository) GetByID(ctx context.Context, id string) (*models.AdminNotification, error) {
	var n models.AdminNotification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListUnread returns pending notifications, newest first
func (r *notificationRepository) ListUnread(ctx context.Context) ([]*models.AdminNotification, error) {
	var notifications []*models.AdminNotification
	err := r.db.WithContext(ctx).
		Where("`read` = ?", false).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// CountUnread counts pending notifications
func (r *notificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdminNotification{}).
		Where("`read` = ?", false).
		Count(&count).Error
	return count, err
}

// ApproveAdmin approves the user and marks the notification processed
// in a single transaction; a partial result never persists.
func (r *notificationRepository) ApproveAdmin(ctx context.Context, userID, notificationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("is_approved", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.AdminNotification{}).
			Where("id = ?", notificationID).
			Update("read", true).Error
	})
}

package services

import (
	"context"
	"errors"
	"log"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotificationMismatch = errors.New("notification does not belong to that user")
)

// NotificationService handles the super admin approval queue
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// ListPending returns unread approval notifications, newest first
func (s *NotificationService) ListPending(ctx context.Context) ([]*models.AdminNotification, error) {
	return s.notificationRepo.ListUnread(ctx)
}

// CountPending returns the number of unread approval notifications
func (s *NotificationService) CountPending(ctx context.Context) (int64, error) {
	return s.notificationRepo.CountUnread(ctx)
}

// ApproveAdmin grants the pending admin account and marks its
// notification read, as one atomic step. Re-approving an already
// processed request is a no-op success.
func (s *NotificationService) ApproveAdmin(ctx context.Context, userID, notificationID string) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}

	if notification.UserID != userID {
		return ErrNotificationMismatch
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if notification.Read && user.IsApproved {
		return nil
	}

	if err := s.notificationRepo.ApproveAdmin(ctx, userID, notificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}

	log.Printf("✅ Admin approved: %s (%s)", user.Name, user.Email)
	return nil
}

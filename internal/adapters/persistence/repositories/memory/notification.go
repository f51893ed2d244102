package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// NotificationRepository is an in-memory approval queue. It holds a
// reference to the user store so ApproveAdmin can apply both halves
// of the approval together.
type NotificationRepository struct {
	mu            sync.Mutex
	notifications map[string]*models.AdminNotification
	users         *UserRepository
}

// NewNotificationRepository creates an empty in-memory queue.
func NewNotificationRepository(users *UserRepository) *NotificationRepository {
	return &NotificationRepository{
		notifications: make(map[string]*models.AdminNotification),
		users:         users,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.AdminNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *n
	r.notifications[n.ID] = &cp
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*models.AdminNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *NotificationRepository) ListUnread(ctx context.Context) ([]*models.AdminNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var unread []*models.AdminNotification
	for _, n := range r.notifications {
		if !n.Read {
			cp := *n
			unread = append(unread, &cp)
		}
	}
	sort.Slice(unread, func(i, j int) bool {
		return unread[i].CreatedAt.After(unread[j].CreatedAt)
	})
	return unread, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, n := range r.notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// ApproveAdmin validates both targets before mutating either, so a
// failure leaves the queue and the user untouched.
func (r *NotificationRepository) ApproveAdmin(ctx context.Context, userID, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[notificationID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	r.users.mu.Lock()
	defer r.users.mu.Unlock()
	if err := r.users.setApprovedLocked(userID); err != nil {
		return err
	}
	n.Read = true
	return nil
}

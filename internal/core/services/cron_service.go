package services

import (
	"context"
	"log"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
	notificationRepo repositories.NotificationRepository
}

// NewCronService creates a new cron service
func NewCronService(
	refreshTokenRepo repositories.RefreshTokenRepository,
	notificationRepo repositories.NotificationRepository,
) *CronService {
	return &CronService{
		cron:             cron.New(),
		refreshTokenRepo: refreshTokenRepo,
		notificationRepo: notificationRepo,
	}
}

// Start registers and starts all scheduled jobs
func (s *CronService) Start() {
	// Purge expired and revoked refresh tokens nightly at 03:30
	s.cron.AddFunc("30 3 * * *", func() {
		deleted, err := s.refreshTokenRepo.DeleteExpired(context.Background())
		if err != nil {
			log.Printf("⚠️ Token purge failed: %v", err)
			return
		}
		log.Printf("✅ Token purge: removed %d expired/revoked tokens", deleted)
	})

	// Remind about pending admin approvals every morning at 08:00
	s.cron.AddFunc("0 8 * * *", func() {
		count, err := s.notificationRepo.CountUnread(context.Background())
		if err != nil {
			log.Printf("⚠️ Pending approval check failed: %v", err)
			return
		}
		if count > 0 {
			log.Printf("⚠️ %d admin approval(s) still pending review", count)
		}
	})

	s.cron.Start()
	log.Println("✅ Cron jobs started")
}

// Stop stops the cron scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("✅ Cron jobs stopped")
}

package config

import (
	"log"
	"time"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedSuperAdmins(); err != nil {
		log.Printf("⚠️ Super admin seeder skipped: %v", err)
	}
	if err := s.seedClubs(); err != nil {
		log.Printf("⚠️ Club seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedSuperAdmins seeds the super admin accounts. These are the only
// super_admin users in the system; signup never creates that role.
func (s *Seeder) seedSuperAdmins() error {
	// The seed password is for development; override it via
	// SEED_SUPERADMIN_PASS before deploying.
	seedPass := getEnv("SEED_SUPERADMIN_PASS", "dhsclubs2526")

	superAdmins := []struct {
		ID    string
		Email string
		Name  string
	}{
		{"1", "kashyap3185@mydusd.org", "Super Admin"},
		{"2", "meadipudi8772@mydusd.org", "Asthra"},
		{"3", "malmgren9480@mydusd.org", "Olivia"},
		{"4", "rosbyelise@dublinusd.org", "Elise Rosby"},
	}

	for _, sa := range superAdmins {
		var count int64
		if err := s.db.Model(&models.User{}).Where("email = ?", sa.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := password.Hash(seedPass)
		if err != nil {
			return err
		}

		user := &models.User{
			ID:           sa.ID,
			Email:        sa.Email,
			Name:         sa.Name,
			PasswordHash: hash,
			Role:         "super_admin",
			IsApproved:   true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := s.db.Create(user).Error; err != nil {
			return err
		}
		log.Printf("✅ Super admin created: %s", user.Email)
	}

	return nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// RefreshTokenRepository is an in-memory refresh token store.
type RefreshTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken // keyed by id
}

// NewRefreshTokenRepository creates an empty in-memory token repository.
func NewRefreshTokenRepository() *RefreshTokenRepository {
	return &RefreshTokenRepository{tokens: make(map[string]*models.RefreshToken)}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *token
	r.tokens[token.ID] = &cp
	return nil
}

func (r *RefreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, token := range r.tokens {
		if token.TokenHash == tokenHash {
			cp := *token
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token, ok := r.tokens[id]; ok && token.RevokedAt == nil {
		now := time.Now()
		token.RevokedAt = &now
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, token := range r.tokens {
		if token.TokenHash == tokenHash && token.RevokedAt == nil {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, token := range r.tokens {
		if token.UserID == userID && token.RevokedAt == nil {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var purged int64
	now := time.Now()
	for id, token := range r.tokens {
		if now.After(token.ExpiresAt) || token.RevokedAt != nil {
			delete(r.tokens, id)
			purged++
		}
	}
	return purged, nil
}

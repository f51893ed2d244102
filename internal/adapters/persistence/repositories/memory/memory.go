// Package memory provides in-memory implementations of the repository
// interfaces. They exist for development and tests only; production
// deployments use the GORM-backed repositories, since membership data
// loss on restart is a correctness regression.
package memory

// Store bundles the in-memory repositories over shared state.
type Store struct {
	Users         *UserRepository
	RefreshTokens *RefreshTokenRepository
	Clubs         *ClubRepository
	Memberships   *MembershipRepository
	Favorites     *FavoriteRepository
	Notifications *NotificationRepository
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	users := NewUserRepository()
	return &Store{
		Users:         users,
		RefreshTokens: NewRefreshTokenRepository(),
		Clubs:         NewClubRepository(),
		Memberships:   NewMembershipRepository(),
		Favorites:     NewFavoriteRepository(),
		Notifications: NewNotificationRepository(users),
	}
}

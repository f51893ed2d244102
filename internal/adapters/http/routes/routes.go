package routes

import (
	"time"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/http/handlers"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/http/middleware"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/config"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	clubRepo := repositories.NewClubRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, notificationRepo, cfg)
	clubService := services.NewClubService(clubRepo)
	membershipService := services.NewMembershipService(membershipRepo, clubRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, clubRepo)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, db)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	clubHandler := handlers.NewClubHandler(clubService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, rate limited)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, authService)

	// Club catalog routes
	clubRoutes := apiV1.Group("/clubs")
	setupClubRoutes(clubRoutes, clubHandler, membershipHandler, favoriteHandler, authService)

	// Current user routes (authenticated)
	meRoutes := apiV1.Group("/me")
	meRoutes.Use(middleware.Protected(authService))
	meRoutes.Use(middleware.PrivateCacheHeaders(30 * time.Second))
	meRoutes.Get("/clubs", membershipHandler.MyClubs)
	meRoutes.Get("/favorites", favoriteHandler.List)

	// Approval queue routes (super admin only)
	notificationRoutes := apiV1.Group("/notifications")
	notificationRoutes.Use(middleware.Protected(authService))
	notificationRoutes.Use(middleware.SuperAdminOnly())
	notificationRoutes.Get("/", notificationHandler.List)
	notificationRoutes.Post("/approve", middleware.StrictRateLimiter(), notificationHandler.ApproveAdmin)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, authService *services.AuthService) {
	router.Use(middleware.NoCacheHeaders())

	// Public routes (5 req/min/IP against credential stuffing)
	router.Post("/signup", middleware.AuthRateLimiter(), handler.Signup)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.Protected(authService), handler.Me)
	router.Post("/logout-all", middleware.Protected(authService), handler.LogoutAll)
}

// setupClubRoutes configures club catalog, membership and favorite routes
func setupClubRoutes(
	router fiber.Router,
	clubHandler *handlers.ClubHandler,
	membershipHandler *handlers.MembershipHandler,
	favoriteHandler *handlers.FavoriteHandler,
	authService *services.AuthService,
) {
	// Public catalog (cacheable)
	router.Get("/", middleware.CatalogCache(), clubHandler.GetAll)
	router.Get("/meetings/upcoming", middleware.CatalogCache(), clubHandler.UpcomingMeetings)
	router.Get("/:id", middleware.CatalogCache(), clubHandler.GetByID)

	// Club management (owner admin or super admin, checked in the service)
	router.Patch("/:id", middleware.Protected(authService), clubHandler.Update)

	// Membership ledger (authenticated)
	router.Post("/:id/join", middleware.Protected(authService), membershipHandler.Join)
	router.Post("/:id/leave", middleware.Protected(authService), membershipHandler.Leave)
	router.Get("/:id/membership", middleware.Protected(authService), membershipHandler.Membership)
	router.Get("/:id/members", middleware.Protected(authService), membershipHandler.Members)

	// Favorites (authenticated)
	router.Post("/:id/favorite", middleware.Protected(authService), favoriteHandler.Toggle)
	router.Get("/:id/favorite", middleware.Protected(authService), favoriteHandler.Status)
}

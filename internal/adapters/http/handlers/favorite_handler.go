package handlers

import (
	"errors"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/http/middleware"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/services"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles favorites endpoints
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Toggle flips the favorite flag for a club
// @Summary Toggle favorite
// @Description Add or remove the club from the current user's favorites
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clubs/{id}/favorite [post]
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	clubID := c.Params("id")
	favorited, err := h.favoriteService.Toggle(c.Context(), user.ID, clubID)
	if err != nil {
		if errors.Is(err, services.ErrClubNotFound) {
			return response.NotFound(c, "Club not found")
		}
		return response.InternalServerError(c, "Failed to toggle favorite")
	}

	message := "Club removed from favorites"
	if favorited {
		message = "Club added to favorites"
	}

	return response.Success(c, message, fiber.Map{
		"club_id":      clubID,
		"is_favorited": favorited,
	})
}

// Status reports whether a club is favorited by the current user
// @Summary Check favorite
// @Description Check whether the club is in the current user's favorites
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} response.Response
// @Router /clubs/{id}/favorite [get]
func (h *FavoriteHandler) Status(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	clubID := c.Params("id")
	favorited, err := h.favoriteService.IsFavorite(c.Context(), user.ID, clubID)
	if err != nil {
		return response.InternalServerError(c, "Failed to check favorite")
	}

	return response.Success(c, "Favorite status retrieved successfully", fiber.Map{
		"club_id":      clubID,
		"is_favorited": favorited,
	})
}

// List returns the current user's favorited clubs
// @Summary List favorites
// @Description List the current user's favorited clubs
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /me/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	clubs, err := h.favoriteService.ListFavorites(c.Context(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list favorites")
	}

	return response.Success(c, "Favorites retrieved successfully", clubs)
}

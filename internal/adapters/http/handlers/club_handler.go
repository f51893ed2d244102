package handlers

import (
	"errors"
	"strconv"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/http/middleware"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/domain"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/services"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/pkg/pagination"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClubHandler handles club catalog endpoints
type ClubHandler struct {
	clubService *services.ClubService
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubService *services.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// GetAll lists clubs with optional filters
// @Summary List clubs
// @Description List clubs with optional category and search filters
// @Tags Clubs
// @Accept json
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Name search"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /clubs [get]
func (h *ClubHandler) GetAll(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	category := c.Query("category")
	if category != "" && category != "All" && !domain.ClubCategory(category).Valid() {
		return response.BadRequest(c, "Unknown category: "+category)
	}

	filter := repositories.ClubFilter{
		Category: category,
		Search:   c.Query("search"),
	}

	clubs, total, err := h.clubService.GetAll(c.Context(), filter, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list clubs")
	}

	return response.Success(c, "Clubs retrieved successfully", pagination.NewResponse(clubs, params, total))
}

// GetByID gets a single club
// @Summary Get club by ID
// @Description Get a single club with tags, meetings, events and portfolios
// @Tags Clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	club, err := h.clubService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrClubNotFound) {
			return response.NotFound(c, "Club not found")
		}
		return response.InternalServerError(c, "Failed to get club")
	}

	return response.Success(c, "Club retrieved successfully", club)
}

// Update applies a partial edit to a club profile
// @Summary Update club
// @Description Update club profile fields (owner admin or super admin only)
// @Tags Clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param body body services.UpdateClubInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clubs/{id} [patch]
func (h *ClubHandler) Update(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.UpdateClubInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	club, err := h.clubService.Update(c.Context(), c.Params("id"), &input, user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClubNotFound):
			return response.NotFound(c, "Club not found")
		case errors.Is(err, services.ErrNotClubOwner):
			return response.Forbidden(c, "You can only manage your own club")
		default:
			return response.InternalServerError(c, "Failed to update club")
		}
	}

	return response.Success(c, "Club updated successfully", club)
}

// UpcomingMeetings lists upcoming meetings across all clubs
// @Summary List upcoming meetings
// @Description List non-cancelled meetings from today onward, soonest first
// @Tags Clubs
// @Accept json
// @Produce json
// @Param limit query int false "Max meetings to return"
// @Success 200 {object} response.Response
// @Router /clubs/meetings/upcoming [get]
func (h *ClubHandler) UpcomingMeetings(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 || limit > pagination.MaxLimit {
		limit = 20
	}

	meetings, err := h.clubService.UpcomingMeetings(c.Context(), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list meetings")
	}

	return response.Success(c, "Upcoming meetings retrieved successfully", meetings)
}

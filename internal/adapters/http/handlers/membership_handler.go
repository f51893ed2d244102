package handlers

import (
	"errors"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/http/middleware"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/services"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MembershipHandler handles membership ledger endpoints
type MembershipHandler struct {
	membershipService *services.MembershipService
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// Join adds the current user to a club
// @Summary Join club
// @Description Join a club; joining twice is a no-op
// @Tags Membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clubs/{id}/join [post]
func (h *MembershipHandler) Join(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	clubID := c.Params("id")
	if err := h.membershipService.Join(c.Context(), user.ID, clubID); err != nil {
		if errors.Is(err, services.ErrClubNotFound) {
			return response.NotFound(c, "Club not found")
		}
		return response.InternalServerError(c, "Failed to join club")
	}

	return response.Success(c, "Joined club successfully", fiber.Map{
		"club_id":   clubID,
		"is_member": true,
	})
}

// Leave removes the current user from a club
// @Summary Leave club
// @Description Leave a club; leaving a club never joined is a no-op
// @Tags Membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} response.Response
// @Router /clubs/{id}/leave [post]
func (h *MembershipHandler) Leave(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	clubID := c.Params("id")
	if err := h.membershipService.Leave(c.Context(), user.ID, clubID); err != nil {
		return response.InternalServerError(c, "Failed to leave club")
	}

	return response.Success(c, "Left club successfully", fiber.Map{
		"club_id":   clubID,
		"is_member": false,
	})
}

// Membership reports whether the current user belongs to a club
// @Summary Check membership
// @Description Check whether the current user is a member of the club
// @Tags Membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} response.Response
// @Router /clubs/{id}/membership [get]
func (h *MembershipHandler) Membership(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	clubID := c.Params("id")
	isMember, err := h.membershipService.IsMember(c.Context(), user.ID, clubID)
	if err != nil {
		return response.InternalServerError(c, "Failed to check membership")
	}

	return response.Success(c, "Membership retrieved successfully", fiber.Map{
		"club_id":   clubID,
		"is_member": isMember,
	})
}

// Members returns the roster of a club
// @Summary List club members
// @Description List member user IDs of a club, oldest first
// @Tags Membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clubs/{id}/members [get]
func (h *MembershipHandler) Members(c *fiber.Ctx) error {
	members, err := h.membershipService.MembersOf(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrClubNotFound) {
			return response.NotFound(c, "Club not found")
		}
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "Members retrieved successfully", members)
}

// MyClubs returns the clubs the current user has joined
// @Summary List my clubs
// @Description List the clubs the current user has joined
// @Tags Membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /me/clubs [get]
func (h *MembershipHandler) MyClubs(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	clubs, err := h.membershipService.ClubsOf(c.Context(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list clubs")
	}

	return response.Success(c, "Clubs retrieved successfully", clubs)
}

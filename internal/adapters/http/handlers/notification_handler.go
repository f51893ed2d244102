package handlers

import (
	"errors"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/services"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles the super admin approval queue
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ApproveAdminRequest represents an admin approval request body
type ApproveAdminRequest struct {
	UserID         string `json:"user_id"`
	NotificationID string `json:"notification_id"`
}

// List returns unread approval notifications
// @Summary List pending approvals
// @Description List unread admin approval notifications, newest first
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.notificationService.ListPending(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list notifications")
	}

	count, err := h.notificationService.CountPending(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to count notifications")
	}

	return response.Success(c, "Notifications retrieved successfully", fiber.Map{
		"notifications": notifications,
		"count":         count,
	})
}

// ApproveAdmin approves a pending admin account
// @Summary Approve admin
// @Description Approve a pending admin and mark the notification read, atomically
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ApproveAdminRequest true "Approval target"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/approve [post]
func (h *NotificationHandler) ApproveAdmin(c *fiber.Ctx) error {
	var req ApproveAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.UserID == "" {
		return response.BadRequest(c, "User ID is required")
	}
	if req.NotificationID == "" {
		return response.BadRequest(c, "Notification ID is required")
	}

	err := h.notificationService.ApproveAdmin(c.Context(), req.UserID, req.NotificationID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotificationNotFound):
			return response.NotFound(c, "Notification not found")
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrNotificationMismatch):
			return response.BadRequest(c, "Notification does not belong to that user")
		default:
			return response.InternalServerError(c, "Failed to approve admin")
		}
	}

	return response.Success(c, "Admin approved successfully", fiber.Map{
		"user_id":     req.UserID,
		"is_approved": true,
	})
}

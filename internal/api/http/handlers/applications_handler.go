package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/internhub/internship-service/internal/api/dto"
	"github.com/internhub/internship-service/internal/service"
)

// ApplicationsHandler manages application endpoints.
type ApplicationsHandler struct {
	applications *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applications *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applications}
}

// Submit POST /api/applications.
func (h *ApplicationsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitApplicationRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	app, err := h.applications.Submit(c.UserContext(), req.UserID, req.InternshipID)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.SubmitApplicationResponse{
		Message:       "Application submitted successfully!",
		ApplicationID: app.ID,
	})
}

// ListForUser GET /api/applications/user/:user_id.
func (h *ApplicationsHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "user_id")
	if err != nil {
		return err
	}
	items, err := h.applications.ListForUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// UpdateStatus PUT /api/applications/:id.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateApplicationStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if err := h.applications.UpdateStatus(c.UserContext(), id, req.Status); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Application status updated successfully"})
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/internhub/internship-service/internal/api/dto"
	"github.com/internhub/internship-service/internal/service"
)

// InternshipsHandler manages catalog endpoints.
type InternshipsHandler struct {
	catalog *service.CatalogService
}

// NewInternshipsHandler constructs handler.
func NewInternshipsHandler(catalog *service.CatalogService) *InternshipsHandler {
	return &InternshipsHandler{catalog: catalog}
}

// Create POST /api/internships.
func (h *InternshipsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInternshipRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	internship, err := h.catalog.CreateInternship(c.UserContext(), service.CreateInternshipInput{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.CreateInternshipResponse{
		Message:      "Internship created successfully!",
		InternshipID: internship.ID,
	})
}

// List GET /api/internships.
func (h *InternshipsHandler) List(c *fiber.Ctx) error {
	items, err := h.catalog.ListInternships(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Get GET /api/internships/:id.
func (h *InternshipsHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	internship, err := h.catalog.GetInternship(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(internship)
}

package server

import (
	"gigboard/internal/models"
	"gigboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListGigs handles GET /api/gigs. Returns open gigs with their owners,
// optionally filtered by a title substring via ?search=.
func (s *Server) ListGigs(c *fiber.Ctx) error {
	gigs, err := s.gigService.ListOpenGigs(c.Context(), c.Query("search"))
	if err != nil {
		return respondServiceError(c, err)
	}
	if gigs == nil {
		gigs = []models.Gig{}
	}
	return c.JSON(gigs)
}

// GetGig handles GET /api/gigs/:id
func (s *Server) GetGig(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	gig, err := s.gigService.GetGig(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(gig)
}

// CreateGig handles POST /api/gigs
func (s *Server) CreateGig(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Budget      int    `json:"budget"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	gig, err := s.gigService.CreateGig(c.Context(), service.CreateGigInput{
		OwnerID:     currentUserID(c),
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(gig)
}

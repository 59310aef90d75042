package server

import (
	"gigboard/internal/models"
	"gigboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateBid handles POST /api/bids
func (s *Server) CreateBid(c *fiber.Ctx) error {
	var req struct {
		GigID   uint   `json:"gigId"`
		Price   int    `json:"price"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	bid, err := s.bidService.CreateBid(c.Context(), service.CreateBidInput{
		FreelancerID: currentUserID(c),
		GigID:        req.GigID,
		Price:        req.Price,
		Message:      req.Message,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bid)
}

// ListBidsForGig handles GET /api/bids/:gigId. Owner-only.
func (s *Server) ListBidsForGig(c *fiber.Ctx) error {
	gigID, err := s.parseID(c, "gigId")
	if err != nil {
		return nil
	}

	bids, err := s.bidService.ListBidsForGig(c.Context(), gigID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	return c.JSON(bids)
}

// HireBid handles PATCH /api/bids/:bidId/hire. Owner-only; an already
// assigned gig yields 409.
func (s *Server) HireBid(c *fiber.Ctx) error {
	bidID, err := s.parseID(c, "bidId")
	if err != nil {
		return nil
	}

	bid, err := s.bidService.HireBid(c.Context(), bidID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(bid)
}

package service

import (
	"context"
	"strings"

	"gigboard/internal/models"
	"gigboard/internal/repository"
)

type GigService struct {
	gigRepo repository.GigRepository
}

type CreateGigInput struct {
	OwnerID     uint
	Title       string
	Description string
	Budget      int
}

func NewGigService(gigRepo repository.GigRepository) *GigService {
	return &GigService{gigRepo: gigRepo}
}

func (s *GigService) CreateGig(ctx context.Context, in CreateGigInput) (*models.Gig, error) {
	if !CanCreateGig(in.OwnerID) {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	const maxTitleLen = 200
	const maxDescriptionLen = 10000

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)

	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if description == "" {
		return nil, models.NewValidationError("Description is required")
	}
	if len(description) > maxDescriptionLen {
		return nil, models.NewValidationError("Description too long (max 10000 characters)")
	}
	if in.Budget <= 0 {
		return nil, models.NewValidationError("Budget must be a positive integer")
	}

	gig := &models.Gig{
		Title:       title,
		Description: description,
		Budget:      in.Budget,
		OwnerID:     in.OwnerID,
		Status:      models.GigStatusOpen,
	}
	if err := s.gigRepo.Create(ctx, gig); err != nil {
		return nil, err
	}
	return s.gigRepo.GetByID(ctx, gig.ID)
}

func (s *GigService) GetGig(ctx context.Context, id uint) (*models.Gig, error) {
	return s.gigRepo.GetByID(ctx, id)
}

// ListOpenGigs returns open gigs, optionally filtered by a title substring.
func (s *GigService) ListOpenGigs(ctx context.Context, search string) ([]models.Gig, error) {
	return s.gigRepo.ListOpen(ctx, strings.TrimSpace(search))
}

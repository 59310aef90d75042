package service

import (
	"context"
	"strings"

	"gigboard/internal/models"
	"gigboard/internal/observability"
	"gigboard/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

type BidService struct {
	bidRepo repository.BidRepository
	gigRepo repository.GigRepository
}

type CreateBidInput struct {
	FreelancerID uint
	GigID        uint
	Price        int
	Message      string
}

func NewBidService(bidRepo repository.BidRepository, gigRepo repository.GigRepository) *BidService {
	return &BidService{bidRepo: bidRepo, gigRepo: gigRepo}
}

func (s *BidService) CreateBid(ctx context.Context, in CreateBidInput) (*models.Bid, error) {
	if !CanCreateBid(in.FreelancerID) {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	const maxMessageLen = 5000

	if in.GigID == 0 {
		return nil, models.NewValidationError("Gig ID is required")
	}
	if in.Price <= 0 {
		return nil, models.NewValidationError("Price must be a positive integer")
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, models.NewValidationError("Message is required")
	}
	if len(in.Message) > maxMessageLen {
		return nil, models.NewValidationError("Message too long (max 5000 characters)")
	}

	// Resolve the gig first so a dangling reference reads as a 404 rather
	// than a storage error.
	if _, err := s.gigRepo.GetByID(ctx, in.GigID); err != nil {
		return nil, err
	}

	bid := &models.Bid{
		GigID:        in.GigID,
		FreelancerID: in.FreelancerID,
		Price:        in.Price,
		Message:      strings.TrimSpace(in.Message),
		Status:       models.BidStatusPending,
	}
	if err := s.bidRepo.Create(ctx, bid); err != nil {
		return nil, err
	}
	return bid, nil
}

// ListBidsForGig returns a gig's bids with their freelancers. Only the gig
// owner may see them.
func (s *BidService) ListBidsForGig(ctx context.Context, gigID, userID uint) ([]models.Bid, error) {
	gig, err := s.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if !CanViewBids(userID, gig) {
		return nil, models.NewForbiddenError("Only the gig owner can view bids")
	}
	return s.bidRepo.ListByGig(ctx, gigID)
}

// HireBid assigns the bid's gig to the bidder. Preconditions are checked in
// order: the bid must exist, its gig must exist, and the caller must own the
// gig. The state transition itself is delegated to the repository, which
// guards against a concurrent hire; an already-assigned gig surfaces as a
// Conflict.
func (s *BidService) HireBid(ctx context.Context, bidID, userID uint) (*models.Bid, error) {
	span, ctx := observability.NewSpan(ctx, "bid.hire")
	defer span.End()
	span.AddAttributes(
		attribute.Int64("bid.id", int64(bidID)),
		attribute.Int64("user.id", int64(userID)),
	)

	bid, err := s.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	gig, err := s.gigRepo.GetByID(ctx, bid.GigID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(attribute.Int64("gig.id", int64(gig.ID)))

	if !CanHire(userID, gig) {
		err := models.NewForbiddenError("Only the gig owner can hire")
		span.SetError(err)
		return nil, err
	}

	hired, err := s.bidRepo.Hire(ctx, gig.ID, bid.ID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	return hired, nil
}

package repository

import (
	"context"
	"errors"

	"gigboard/internal/cache"
	"gigboard/internal/models"

	"gorm.io/gorm"
)

// BidRepository defines persistence operations for bids, including the hire
// transaction.
type BidRepository interface {
	Create(ctx context.Context, bid *models.Bid) error
	GetByID(ctx context.Context, id uint) (*models.Bid, error)
	ListByGig(ctx context.Context, gigID uint) ([]models.Bid, error)
	Hire(ctx context.Context, gigID, bidID uint) (*models.Bid, error)
}

type bidRepository struct {
	db *gorm.DB
}

// NewBidRepository returns a new BidRepository implementation.
func NewBidRepository(db *gorm.DB) BidRepository {
	return &bidRepository{db: db}
}

func (r *bidRepository) Create(ctx context.Context, bid *models.Bid) error {
	if bid.Status == "" {
		bid.Status = models.BidStatusPending
	}
	if err := r.db.WithContext(ctx).Create(bid).Error; err != nil {
		if isForeignKeyViolation(err) {
			return models.NewNotFoundError("Gig", bid.GigID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *bidRepository) GetByID(ctx context.Context, id uint) (*models.Bid, error) {
	var bid models.Bid
	if err := r.db.WithContext(ctx).First(&bid, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Bid", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &bid, nil
}

// ListByGig returns all bids on a gig with their freelancers, in insertion order.
func (r *bidRepository) ListByGig(ctx context.Context, gigID uint) ([]models.Bid, error) {
	var bids []models.Bid
	if err := r.db.WithContext(ctx).
		Preload("Freelancer").
		Where("gig_id = ?", gigID).
		Order("created_at ASC, id ASC").
		Find(&bids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return bids, nil
}

// Hire atomically assigns the gig to the given bid: the gig moves to
// "assigned", the bid to "hired" and every sibling bid to "rejected". All
// three writes commit together or not at all.
//
// The gig update is conditional on the gig still being open. Zero rows
// affected means another hire won the race (or the gig was assigned
// earlier); the transaction aborts with a Conflict and no state changes.
// Rejecting siblings is a blanket update, so re-rejecting an already
// rejected bid is a no-op rather than an error.
func (r *bidRepository) Hire(ctx context.Context, gigID, bidID uint) (*models.Bid, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Gig{}).
			Where("id = ? AND status = ?", gigID, models.GigStatusOpen).
			Update("status", models.GigStatusAssigned)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewConflictError("Gig is no longer open")
		}

		if err := tx.Model(&models.Bid{}).
			Where("id = ?", bidID).
			Update("status", models.BidStatusHired).Error; err != nil {
			return models.NewInternalError(err)
		}

		if err := tx.Model(&models.Bid{}).
			Where("gig_id = ? AND id <> ?", gigID, bidID).
			Update("status", models.BidStatusRejected).Error; err != nil {
			return models.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateGig(ctx, gigID)

	var hired models.Bid
	if err := r.db.WithContext(ctx).Preload("Freelancer").First(&hired, bidID).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &hired, nil
}

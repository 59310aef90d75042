package repository

import (
	"context"
	"errors"
	"strings"

	"gigboard/internal/cache"
	"gigboard/internal/models"

	"gorm.io/gorm"
)

// GigRepository defines persistence operations for gigs.
type GigRepository interface {
	Create(ctx context.Context, gig *models.Gig) error
	GetByID(ctx context.Context, id uint) (*models.Gig, error)
	ListOpen(ctx context.Context, search string) ([]models.Gig, error)
}

type gigRepository struct {
	db *gorm.DB
}

// NewGigRepository returns a new GigRepository implementation.
func NewGigRepository(db *gorm.DB) GigRepository {
	return &gigRepository{db: db}
}

func (r *gigRepository) Create(ctx context.Context, gig *models.Gig) error {
	if gig.Status == "" {
		gig.Status = models.GigStatusOpen
	}
	if err := r.db.WithContext(ctx).Create(gig).Error; err != nil {
		if isForeignKeyViolation(err) {
			return models.NewNotFoundError("User", gig.OwnerID)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateOpenGigsList(ctx)
	return nil
}

func (r *gigRepository) GetByID(ctx context.Context, id uint) (*models.Gig, error) {
	var gig models.Gig
	key := cache.GigKey(id)

	err := cache.Aside(ctx, key, &gig, cache.GigTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Owner").First(&gig, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Gig", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &gig, nil
}

// ListOpen returns open gigs with their owners, newest first. The title
// filter is a case-insensitive substring match. Only the unfiltered listing
// is cached; search terms vary too much to be worth keying.
func (r *gigRepository) ListOpen(ctx context.Context, search string) ([]models.Gig, error) {
	var gigs []models.Gig

	fetch := func() error {
		q := r.db.WithContext(ctx).
			Preload("Owner").
			Where("status = ?", models.GigStatusOpen).
			Order("created_at DESC, id DESC")
		if search != "" {
			q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
		}
		if err := q.Find(&gigs).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	if search != "" {
		if err := fetch(); err != nil {
			return nil, err
		}
		return gigs, nil
	}

	if err := cache.Aside(ctx, cache.OpenGigsListKey, &gigs, cache.GigListTTL, fetch); err != nil {
		return nil, err
	}
	return gigs, nil
}

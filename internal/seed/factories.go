// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"gigboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a random name and email. The password is
// bcrypt-hashed so seeded accounts can actually log in.
func (f *Factory) CreateUser(password string, overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    fmt.Sprintf("%s.%s@example.com", gofakeit.Username(), gofakeit.LetterN(4)),
		Password: string(hashed),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateGig persists an open gig owned by the given user, with a realistic
// created_at spread over the past weeks.
func (f *Factory) CreateGig(owner *models.User, overrides ...func(*models.Gig)) (*models.Gig, error) {
	gig := &models.Gig{
		Title:       fmt.Sprintf("%s for %s", gofakeit.JobTitle(), gofakeit.Company()),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		Budget:      f.rand.Intn(49)*100 + 200,
		OwnerID:     owner.ID,
		Status:      models.GigStatusOpen,
	}

	daysBack := f.rand.Intn(21)
	hoursBack := f.rand.Intn(24)
	gig.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(gig)
	}

	if err := f.db.Create(gig).Error; err != nil {
		return nil, err
	}
	return gig, nil
}

// CreateBid persists a pending bid by the freelancer on the gig. The price
// defaults to a value near the gig's budget.
func (f *Factory) CreateBid(gig *models.Gig, freelancer *models.User, overrides ...func(*models.Bid)) (*models.Bid, error) {
	price := gig.Budget - f.rand.Intn(gig.Budget/2+1)
	if price < 1 {
		price = 1
	}

	bid := &models.Bid{
		GigID:        gig.ID,
		FreelancerID: freelancer.ID,
		Price:        price,
		Message:      gofakeit.Sentence(12),
		Status:       models.BidStatusPending,
	}
	for _, override := range overrides {
		override(bid)
	}

	if err := f.db.Create(bid).Error; err != nil {
		return nil, err
	}
	return bid, nil
}

package seed

import (
	"log"

	"gigboard/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumGigs     int
	ShouldClean bool
}

// Seed populates the database with randomized marketplace data: a pool of
// users, open gigs spread among them, and a few pending bids per gig.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d gigs...", opts.NumUsers, opts.NumGigs)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser("password123")
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	if len(users) < 2 {
		log.Println("Not enough users to create gigs and bids, skipping")
		return nil
	}

	for i := 0; i < opts.NumGigs; i++ {
		owner := users[factory.rand.Intn(len(users))]
		gig, err := factory.CreateGig(owner)
		if err != nil {
			return err
		}

		numBids := factory.rand.Intn(4)
		for j := 0; j < numBids; j++ {
			freelancer := users[factory.rand.Intn(len(users))]
			if freelancer.ID == owner.ID {
				continue
			}
			if _, err := factory.CreateBid(gig, freelancer); err != nil {
				return err
			}
		}
	}

	log.Println("Database seeded successfully")
	return nil
}

// Demo creates the fixed demo accounts and postings so the app is browsable
// right after boot: a client with two open gigs and a freelancer with one
// pending bid. Idempotent; it does nothing when the client account exists.
func Demo(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", "client@example.com").First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	client := &models.User{
		Name:     "Alice Client",
		Email:    "client@example.com",
		Password: string(hashed),
	}
	if err := db.Create(client).Error; err != nil {
		return err
	}

	freelancer := &models.User{
		Name:     "Bob Freelancer",
		Email:    "freelancer@example.com",
		Password: string(hashed),
	}
	if err := db.Create(freelancer).Error; err != nil {
		return err
	}

	gig1 := &models.Gig{
		Title:       "Build a React Website",
		Description: "I need a portfolio website built with React and Tailwind.",
		Budget:      500,
		OwnerID:     client.ID,
		Status:      models.GigStatusOpen,
	}
	if err := db.Create(gig1).Error; err != nil {
		return err
	}

	gig2 := &models.Gig{
		Title:       "Logo Design for Startup",
		Description: "Need a modern logo for my tech startup.",
		Budget:      200,
		OwnerID:     client.ID,
		Status:      models.GigStatusOpen,
	}
	if err := db.Create(gig2).Error; err != nil {
		return err
	}

	bid := &models.Bid{
		GigID:        gig1.ID,
		FreelancerID: freelancer.ID,
		Price:        450,
		Message:      "I can build this for you in 3 days. Check my portfolio!",
		Status:       models.BidStatusPending,
	}
	if err := db.Create(bid).Error; err != nil {
		return err
	}

	log.Println("Demo data seeded successfully")
	return nil
}

// clearData removes all marketplace rows, children first.
func clearData(db *gorm.DB) error {
	for _, model := range []any{&models.Bid{}, &models.Gig{}, &models.User{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

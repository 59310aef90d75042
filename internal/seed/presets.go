package seed

import (
	"fmt"
	"os"

	"gigboard/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Preset is a declarative seed file: users keyed by email, gigs keyed by
// owner email, bids keyed by gig title and freelancer email.
type Preset struct {
	Users []PresetUser `yaml:"users"`
	Gigs  []PresetGig  `yaml:"gigs"`
}

type PresetUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type PresetGig struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Budget      int         `yaml:"budget"`
	Owner       string      `yaml:"owner"`
	Bids        []PresetBid `yaml:"bids"`
}

type PresetBid struct {
	Freelancer string `yaml:"freelancer"`
	Price      int    `yaml:"price"`
	Message    string `yaml:"message"`
}

// LoadPreset parses a YAML preset file.
func LoadPreset(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	var preset Preset
	if err := yaml.Unmarshal(raw, &preset); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	return &preset, nil
}

// Apply persists the preset's users, gigs and bids. Emails must be unique
// within the preset; gig owners and bid freelancers reference users by email.
func (p *Preset) Apply(db *gorm.DB) error {
	usersByEmail := make(map[string]*models.User, len(p.Users))

	for _, pu := range p.Users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(pu.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &models.User{Name: pu.Name, Email: pu.Email, Password: string(hashed)}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", pu.Email, err)
		}
		usersByEmail[pu.Email] = user
	}

	for _, pg := range p.Gigs {
		owner, ok := usersByEmail[pg.Owner]
		if !ok {
			return fmt.Errorf("gig %q references unknown owner %q", pg.Title, pg.Owner)
		}
		gig := &models.Gig{
			Title:       pg.Title,
			Description: pg.Description,
			Budget:      pg.Budget,
			OwnerID:     owner.ID,
			Status:      models.GigStatusOpen,
		}
		if err := db.Create(gig).Error; err != nil {
			return fmt.Errorf("create gig %q: %w", pg.Title, err)
		}

		for _, pb := range pg.Bids {
			freelancer, ok := usersByEmail[pb.Freelancer]
			if !ok {
				return fmt.Errorf("bid on %q references unknown freelancer %q", pg.Title, pb.Freelancer)
			}
			bid := &models.Bid{
				GigID:        gig.ID,
				FreelancerID: freelancer.ID,
				Price:        pb.Price,
				Message:      pb.Message,
				Status:       models.BidStatusPending,
			}
			if err := db.Create(bid).Error; err != nil {
				return fmt.Errorf("create bid on %q: %w", pg.Title, err)
			}
		}
	}

	return nil
}

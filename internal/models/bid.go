package models

import (
	"time"
)

// BidStatus is the lifecycle state of a bid.
type BidStatus string

const (
	// BidStatusPending means the bid awaits the gig owner's decision.
	BidStatusPending BidStatus = "pending"
	// BidStatusHired means the gig owner selected this bid. At most one bid
	// per gig ever reaches this state.
	BidStatusHired BidStatus = "hired"
	// BidStatusRejected means another bid was hired instead.
	BidStatusRejected BidStatus = "rejected"
)

// Bid is a freelancer's priced proposal against a single gig.
type Bid struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	GigID        uint      `gorm:"not null;index" json:"gig_id"`
	Gig          Gig       `gorm:"foreignKey:GigID" json:"-"`
	FreelancerID uint      `gorm:"not null;index" json:"freelancer_id"`
	Freelancer   User      `gorm:"foreignKey:FreelancerID" json:"freelancer"`
	Price        int       `gorm:"not null" json:"price"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	Status       BidStatus `gorm:"type:varchar(16);not null;default:pending;index" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

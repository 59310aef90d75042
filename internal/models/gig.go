package models

import (
	"time"
)

// GigStatus is the lifecycle state of a gig.
type GigStatus string

const (
	// GigStatusOpen means the gig is accepting bids.
	GigStatusOpen GigStatus = "open"
	// GigStatusAssigned means a bid has been hired. Assignment is terminal;
	// a gig never reopens.
	GigStatusAssigned GigStatus = "assigned"
)

// Gig is a posted unit of work owned by the client who created it.
type Gig struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Budget      int       `gorm:"not null" json:"budget"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       User      `gorm:"foreignKey:OwnerID" json:"owner"`
	Status      GigStatus `gorm:"type:varchar(16);not null;default:open;index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

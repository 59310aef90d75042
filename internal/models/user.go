// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User is a marketplace account. The same account can post gigs as a client
// and place bids as a freelancer; roles are not fixed at registration.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package service

import "gigboard/internal/models"

// Access policy predicates. Pure functions; callers translate false into a
// Forbidden (or Unauthorized) error at the boundary.

// CanCreateGig reports whether the principal may post a gig. Any
// authenticated user can.
func CanCreateGig(userID uint) bool {
	return userID != 0
}

// CanCreateBid reports whether the principal may bid. Any authenticated user
// can, including the gig's own owner.
func CanCreateBid(userID uint) bool {
	return userID != 0
}

// CanViewBids reports whether the principal may list a gig's bids. Only the
// gig owner can.
func CanViewBids(userID uint, gig *models.Gig) bool {
	return gig != nil && gig.OwnerID == userID
}

// CanHire reports whether the principal may hire a bid on the gig. Only the
// gig owner can.
func CanHire(userID uint, gig *models.Gig) bool {
	return gig != nil && gig.OwnerID == userID
}

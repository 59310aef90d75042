package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	GigKeyPrefix  = "gig:%d"
	// OpenGigsListKey caches the unfiltered open-gig listing only; searches
	// always hit the database.
	OpenGigsListKey = "gigs:open"
)

const (
	UserTTL    = 5 * time.Minute
	GigTTL     = 5 * time.Minute
	GigListTTL = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func GigKey(gigID uint) string {
	return fmt.Sprintf(GigKeyPrefix, gigID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateGig drops both the gig detail entry and the open-gig listing;
// any gig mutation (creation, hire) can change what the listing shows.
func InvalidateGig(ctx context.Context, gigID uint) {
	Invalidate(ctx, GigKey(gigID))
	Invalidate(ctx, OpenGigsListKey)
}

func InvalidateOpenGigsList(ctx context.Context) {
	Invalidate(ctx, OpenGigsListKey)
}

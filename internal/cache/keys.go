package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs per entity. Listings change often (offers, sales) so they get
// a short TTL; user profiles are comparatively stable.
const (
	ComicTTL = 2 * time.Minute
	UserTTL  = 10 * time.Minute
)

// ComicKey returns the cache key for a single comic detail.
func ComicKey(comicID uint) string {
	return fmt.Sprintf("comic:%d", comicID)
}

// UserKey returns the cache key for a user profile.
func UserKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

// InvalidateComic drops the cached detail for a comic.
func InvalidateComic(ctx context.Context, rdb *redis.Client, comicID uint) {
	Invalidate(ctx, rdb, ComicKey(comicID))
}

// InvalidateUser drops the cached profile for a user.
func InvalidateUser(ctx context.Context, rdb *redis.Client, userID uint) {
	Invalidate(ctx, rdb, UserKey(userID))
}

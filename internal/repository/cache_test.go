package repository

import (
	"context"
	"testing"

	"trademaster/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestUserRepository_UpdateAfterCachedReadKeepsPassword(t *testing.T) {
	db := setupOfferTestDB(t)
	rdb := setupTestRedis(t)
	repo := NewUserRepository(db, rdb)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: "Alice", LastName: "Archer", Username: "alice", Email: "alice@example.com", Password: string(hash)}
	require.NoError(t, db.Create(&user).Error)

	// Warm the cache, then read through it. The password column never
	// serializes, so the cached copy comes back without the hash.
	_, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	cached, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cached.Password)

	cached.Name = "Alicia"
	require.NoError(t, repo.Update(ctx, cached))

	// The stored hash survives a profile update from a cache-derived copy
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, "Alicia", reloaded.Name)
	require.NotEmpty(t, reloaded.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(reloaded.Password), []byte("Password123")))
}

func TestUserRepository_UpdateWritesNewPasswordHash(t *testing.T) {
	db := setupOfferTestDB(t)
	rdb := setupTestRedis(t)
	repo := NewUserRepository(db, rdb)
	ctx := context.Background()

	oldHash, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: "Alice", LastName: "Archer", Username: "alice", Email: "alice@example.com", Password: string(oldHash)}
	require.NoError(t, db.Create(&user).Error)

	cached, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)

	newHash, err := bcrypt.GenerateFromPassword([]byte("Changed456"), bcrypt.MinCost)
	require.NoError(t, err)
	cached.Password = string(newHash)
	require.NoError(t, repo.Update(ctx, cached))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(reloaded.Password), []byte("Changed456")))
}

func TestComicRepository_GetByID_CacheHitKeepsSeller(t *testing.T) {
	db := setupOfferTestDB(t)
	rdb := setupTestRedis(t)
	repo := NewComicRepository(db, rdb)
	ctx := context.Background()

	comic, _ := seedOfferScenario(t, db, 0)

	first, err := repo.GetByID(ctx, comic.ID)
	require.NoError(t, err)
	require.Equal(t, "seller", first.Seller.Username)

	// The second read is served from the cache; the seller association is
	// restored rather than returned zero-valued
	second, err := repo.GetByID(ctx, comic.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Seller.ID, second.Seller.ID)
	assert.Equal(t, "seller", second.Seller.Username)
}

func TestComicRepository_UpdateAfterCachedRead(t *testing.T) {
	db := setupOfferTestDB(t)
	rdb := setupTestRedis(t)
	repo := NewComicRepository(db, rdb)
	ctx := context.Background()

	comic, _ := seedOfferScenario(t, db, 0)

	_, err := repo.GetByID(ctx, comic.ID)
	require.NoError(t, err)
	cached, err := repo.GetByID(ctx, comic.ID)
	require.NoError(t, err)

	cached.Title = "Renamed"
	require.NoError(t, repo.Update(ctx, cached))

	var reloaded models.Comic
	require.NoError(t, db.First(&reloaded, comic.ID).Error)
	assert.Equal(t, "Renamed", reloaded.Title)
	assert.Equal(t, comic.SellerID, reloaded.SellerID)
	assert.False(t, reloaded.IsSold)

	// The loaded Seller association must not leak into the users table
	var seller models.User
	require.NoError(t, db.First(&seller, comic.SellerID).Error)
	assert.Equal(t, "pw", seller.Password)
}

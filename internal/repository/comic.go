package repository

import (
	"context"
	"errors"

	"trademaster/internal/cache"
	"trademaster/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ComicRepository defines persistence operations for comic listings.
type ComicRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Comic, error)
	ListAvailable(ctx context.Context, limit, offset int) ([]models.Comic, error)
	ListBySeller(ctx context.Context, sellerID uint) ([]models.Comic, error)
	Create(ctx context.Context, comic *models.Comic) error
	Update(ctx context.Context, comic *models.Comic) error
	Delete(ctx context.Context, id uint) error
}

type comicRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewComicRepository returns a new ComicRepository implementation.
func NewComicRepository(db *gorm.DB, rdb *redis.Client) ComicRepository {
	return &comicRepository{db: db, rdb: rdb}
}

func (r *comicRepository) GetByID(ctx context.Context, id uint) (*models.Comic, error) {
	comic, err := cache.Aside(ctx, r.rdb, cache.ComicKey(id), cache.ComicTTL, func() (models.Comic, error) {
		var c models.Comic
		if err := r.db.WithContext(ctx).Preload("Seller").First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c, models.NewNotFoundError("Comic", id)
			}
			return c, models.NewInternalError(err)
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	// The Seller association never serializes into the cache, so a hit comes
	// back with a zero-valued seller. Reload it so callers can always render
	// the embedded seller profile.
	if comic.Seller.ID == 0 && comic.SellerID != 0 {
		if err := r.db.WithContext(ctx).First(&comic.Seller, comic.SellerID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewInternalError(err)
		}
	}
	return &comic, nil
}

// ListAvailable returns unsold listings, newest first, with sellers preloaded.
func (r *comicRepository) ListAvailable(ctx context.Context, limit, offset int) ([]models.Comic, error) {
	var comics []models.Comic
	if err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("is_sold = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comics).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comics, nil
}

// ListBySeller returns every listing owned by the seller, sold ones included.
func (r *comicRepository) ListBySeller(ctx context.Context, sellerID uint) ([]models.Comic, error) {
	var comics []models.Comic
	if err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&comics).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comics, nil
}

func (r *comicRepository) Create(ctx context.Context, comic *models.Comic) error {
	if err := r.db.WithContext(ctx).Create(comic).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update persists the mutable listing columns. The write is limited to an
// explicit column list so a copy that came through the cache (or has the
// Seller association loaded) can never drag stale state over the row.
func (r *comicRepository) Update(ctx context.Context, comic *models.Comic) error {
	cols := []string{"title", "publisher", "edition", "condition", "description", "price", "category", "image"}
	if err := r.db.WithContext(ctx).Model(comic).Select(cols).Updates(comic).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateComic(ctx, r.rdb, comic.ID)
	return nil
}

// Delete removes the comic and every row referencing it. Comics are
// hard-deleted, so the dependent trade offers and wish-list entries must go
// in the same transaction.
func (r *comicRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comic_id = ?", id).Delete(&models.TradeOffer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comic_id = ?", id).Delete(&models.WishListItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comic{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateComic(ctx, r.rdb, id)
	return nil
}

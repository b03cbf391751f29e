package repository

import (
	"context"

	"trademaster/internal/models"

	"gorm.io/gorm"
)

// WishListRepository defines persistence operations for wish lists.
type WishListRepository interface {
	Add(ctx context.Context, item *models.WishListItem) error
	ListByUser(ctx context.Context, userID uint) ([]models.WishListItem, error)
	Remove(ctx context.Context, userID, comicID uint) error
}

type wishListRepository struct {
	db *gorm.DB
}

// NewWishListRepository returns a new WishListRepository implementation.
func NewWishListRepository(db *gorm.DB) WishListRepository {
	return &wishListRepository{db: db}
}

func (r *wishListRepository) Add(ctx context.Context, item *models.WishListItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Comic is already in your wish list")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *wishListRepository) ListByUser(ctx context.Context, userID uint) ([]models.WishListItem, error) {
	var items []models.WishListItem
	if err := r.db.WithContext(ctx).
		Preload("Comic.Seller").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

// Remove deletes the (user, comic) association. The composite unique index on
// (user_id, comic_id) guarantees at most one row matches.
func (r *wishListRepository) Remove(ctx context.Context, userID, comicID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND comic_id = ?", userID, comicID).
		Delete(&models.WishListItem{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Wish list entry for comic", comicID)
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"trademaster/internal/cache"
	"trademaster/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatusUpdateResult reports what an offer status transition did, so the
// service layer can record metrics without re-querying.
type StatusUpdateResult struct {
	Offer            *models.TradeOffer
	RejectedSiblings int64
	ComicSold        bool
}

// TradeOfferRepository defines persistence operations for trade offers.
type TradeOfferRepository interface {
	Create(ctx context.Context, offer *models.TradeOffer) error
	GetByID(ctx context.Context, id uint) (*models.TradeOffer, error)
	ListBySeller(ctx context.Context, sellerID uint) ([]models.TradeOffer, error)
	ListByTrader(ctx context.Context, traderID uint) ([]models.TradeOffer, error)
	UpdateStatus(ctx context.Context, offerID, sellerID uint, status models.OfferStatus) (*StatusUpdateResult, error)
}

type tradeOfferRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewTradeOfferRepository returns a new TradeOfferRepository implementation.
func NewTradeOfferRepository(db *gorm.DB, rdb *redis.Client) TradeOfferRepository {
	return &tradeOfferRepository{db: db, rdb: rdb}
}

func (r *tradeOfferRepository) Create(ctx context.Context, offer *models.TradeOffer) error {
	if err := r.db.WithContext(ctx).Create(offer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tradeOfferRepository) GetByID(ctx context.Context, id uint) (*models.TradeOffer, error) {
	var offer models.TradeOffer
	if err := r.db.WithContext(ctx).
		Preload("Comic.Seller").
		Preload("Seller").
		Preload("Trader").
		First(&offer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Trade offer", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &offer, nil
}

// ListBySeller returns offers received on the seller's listings, newest first.
func (r *tradeOfferRepository) ListBySeller(ctx context.Context, sellerID uint) ([]models.TradeOffer, error) {
	return r.list(ctx, "seller_id = ?", sellerID)
}

// ListByTrader returns offers the trader has made, newest first.
func (r *tradeOfferRepository) ListByTrader(ctx context.Context, traderID uint) ([]models.TradeOffer, error) {
	return r.list(ctx, "trader_id = ?", traderID)
}

func (r *tradeOfferRepository) list(ctx context.Context, cond string, id uint) ([]models.TradeOffer, error) {
	var offers []models.TradeOffer
	if err := r.db.WithContext(ctx).
		Preload("Comic.Seller").
		Preload("Seller").
		Preload("Trader").
		Where(cond, id).
		Order("created_at DESC").
		Find(&offers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return offers, nil
}

// lockForUpdate adds a row lock on dialects that support it. SQLite (used in
// tests) runs single-writer and rejects the FOR UPDATE syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// UpdateStatus transitions an offer owned by sellerID out of the pending
// state. Accepting an offer, rejecting its pending siblings and marking the
// comic sold happen in one transaction under row locks, so two concurrent
// acceptances on the same comic cannot both win.
func (r *tradeOfferRepository) UpdateStatus(ctx context.Context, offerID, sellerID uint, status models.OfferStatus) (*StatusUpdateResult, error) {
	result := &StatusUpdateResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var offer models.TradeOffer
		if err := lockForUpdate(tx).First(&offer, offerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Trade offer", offerID)
			}
			return models.NewInternalError(err)
		}
		if offer.SellerID != sellerID {
			return models.NewUnauthorizedError("You can only respond to offers on your own comics")
		}
		if offer.Status.Terminal() {
			return models.NewValidationError("Trade offer has already been resolved")
		}

		if status == models.OfferStatusAccepted {
			var comic models.Comic
			if err := lockForUpdate(tx).First(&comic, offer.ComicID).Error; err != nil {
				return models.NewInternalError(err)
			}
			if comic.IsSold {
				return models.NewValidationError("Comic has already been sold")
			}

			// Force-reject every other pending offer on the same comic.
			siblings := tx.Model(&models.TradeOffer{}).
				Where("comic_id = ? AND id <> ? AND status = ?", offer.ComicID, offer.ID, models.OfferStatusPending).
				Update("status", models.OfferStatusRejected)
			if siblings.Error != nil {
				return models.NewInternalError(siblings.Error)
			}
			result.RejectedSiblings = siblings.RowsAffected

			if err := tx.Model(&comic).Update("is_sold", true).Error; err != nil {
				return models.NewInternalError(err)
			}
			result.ComicSold = true

			// Both parties completed a trade.
			if err := tx.Model(&models.User{}).
				Where("id IN ?", []uint{offer.SellerID, offer.TraderID}).
				Update("trades_count", gorm.Expr("trades_count + 1")).Error; err != nil {
				return models.NewInternalError(err)
			}
		}

		if err := tx.Model(&offer).Update("status", status).Error; err != nil {
			return models.NewInternalError(err)
		}
		offer.Status = status
		result.Offer = &offer
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.ComicSold {
		cache.InvalidateComic(ctx, r.rdb, result.Offer.ComicID)
		cache.InvalidateUser(ctx, r.rdb, result.Offer.SellerID)
		cache.InvalidateUser(ctx, r.rdb, result.Offer.TraderID)
	}
	return result, nil
}

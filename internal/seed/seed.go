package seed

import (
	"fmt"
	"log"

	"trademaster/internal/models"

	"gorm.io/gorm"
)

// Options controls how much data Run generates.
type Options struct {
	Users           int
	ComicsPerUser   int
	OffersPerComic  int
	WishesPerUser   int
	MaxDays         int
	SkipBcrypt      bool
	ResolveFraction float64 // share of comics whose best offer gets accepted
}

// DefaultOptions returns a small but realistic demo data set.
func DefaultOptions() Options {
	return Options{
		Users:           10,
		ComicsPerUser:   4,
		OffersPerComic:  2,
		WishesPerUser:   3,
		MaxDays:         90,
		ResolveFraction: 0.2,
	}
}

// Run populates the database with demo users, listings, offers and wish
// lists. A fraction of comics get their first offer accepted so sold
// listings and resolved offers show up in the UI.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	var comics []*models.Comic
	for _, u := range users {
		for i := 0; i < opts.ComicsPerUser; i++ {
			comic, err := f.CreateComic(u)
			if err != nil {
				return fmt.Errorf("seed comic: %w", err)
			}
			comics = append(comics, comic)
		}
	}
	log.Printf("seeded %d comics", len(comics))

	offerCount := 0
	resolveEvery := 0
	if opts.ResolveFraction > 0 {
		resolveEvery = int(1 / opts.ResolveFraction)
	}
	for ci, comic := range comics {
		var first *models.TradeOffer
		for i := 0; i < opts.OffersPerComic; i++ {
			trader := users[f.rnd.Intn(len(users))]
			if trader.ID == comic.SellerID {
				continue
			}
			offer, err := f.CreateOffer(comic, trader)
			if err != nil {
				return fmt.Errorf("seed offer: %w", err)
			}
			offerCount++
			if first == nil {
				first = offer
			}
		}

		if first != nil && resolveEvery > 0 && ci%resolveEvery == 0 {
			if err := acceptOffer(db, comic, first); err != nil {
				return fmt.Errorf("seed accept: %w", err)
			}
		}
	}
	log.Printf("seeded %d trade offers", offerCount)

	wishCount := 0
	for _, u := range users {
		for i := 0; i < opts.WishesPerUser; i++ {
			comic := comics[f.rnd.Intn(len(comics))]
			if comic.SellerID == u.ID {
				continue
			}
			if _, err := f.CreateWishListItem(u, comic); err != nil {
				// duplicate (user, comic) pairs are expected with random picks
				continue
			}
			wishCount++
		}
	}
	log.Printf("seeded %d wish list items", wishCount)

	return nil
}

// acceptOffer mirrors the acceptance workflow: the winning offer is marked
// accepted, pending siblings rejected, the comic sold and both parties'
// trade counters bumped.
func acceptOffer(db *gorm.DB, comic *models.Comic, offer *models.TradeOffer) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TradeOffer{}).
			Where("comic_id = ? AND id <> ? AND status = ?", comic.ID, offer.ID, models.OfferStatusPending).
			Update("status", models.OfferStatusRejected).Error; err != nil {
			return err
		}
		if err := tx.Model(offer).Update("status", models.OfferStatusAccepted).Error; err != nil {
			return err
		}
		if err := tx.Model(comic).Update("is_sold", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id IN ?", []uint{offer.SellerID, offer.TraderID}).
			Update("trades_count", gorm.Expr("trades_count + 1")).Error
	})
}

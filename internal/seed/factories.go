// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"trademaster/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var publishers = []string{"Marvel", "DC", "Image", "Dark Horse", "IDW", "Independiente"}

var conditions = []string{"Mint", "Near Mint", "Very Fine", "Fine", "Good", "Fair"}

var offerTypes = []string{"trade", "purchase", "trade_plus_cash"}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rnd  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, opts: opts, rnd: rand.New(rand.NewSource(seed))}
}

// CreateUser constructs and persists a sample account. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:     gofakeit.FirstName(),
		LastName: gofakeit.LastName(),
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Phone:    gofakeit.Phone(),
		Image:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "Password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateComic constructs and persists a listing owned by seller.
func (f *Factory) CreateComic(seller *models.User, overrides ...func(*models.Comic)) (*models.Comic, error) {
	price := decimal.NewFromFloat(float64(gofakeit.Number(500, 50000)) / 100)

	comic := &models.Comic{
		Title:       gofakeit.BookTitle(),
		Publisher:   publishers[f.rnd.Intn(len(publishers))],
		Edition:     fmt.Sprintf("#%d", gofakeit.Number(1, 500)),
		Condition:   conditions[f.rnd.Intn(len(conditions))],
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		Price:       price,
		Image:       fmt.Sprintf("https://picsum.photos/seed/%s/600/900", gofakeit.UUID()),
		SellerID:    seller.ID,
		Category:    models.DefaultComicCategory,
		CreatedAt:   f.pastTime(),
	}

	for _, override := range overrides {
		override(comic)
	}

	if err := f.db.Create(comic).Error; err != nil {
		return nil, err
	}
	return comic, nil
}

// CreateOffer constructs and persists a pending offer from trader on comic.
func (f *Factory) CreateOffer(comic *models.Comic, trader *models.User, overrides ...func(*models.TradeOffer)) (*models.TradeOffer, error) {
	offer := &models.TradeOffer{
		OfferType:   offerTypes[f.rnd.Intn(len(offerTypes))],
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 2, 6, "\n"),
		ComicID:     comic.ID,
		SellerID:    comic.SellerID,
		TraderID:    trader.ID,
		Status:      models.OfferStatusPending,
		Image:       fmt.Sprintf("https://picsum.photos/seed/offer-%s/600/900", gofakeit.UUID()),
		Date:        f.pastTime(),
	}

	for _, override := range overrides {
		override(offer)
	}

	if err := f.db.Create(offer).Error; err != nil {
		return nil, err
	}
	return offer, nil
}

// CreateWishListItem puts comic on user's wish list.
func (f *Factory) CreateWishListItem(user *models.User, comic *models.Comic) (*models.WishListItem, error) {
	item := &models.WishListItem{
		UserID:  user.ID,
		ComicID: comic.ID,
	}
	if err := f.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// pastTime returns a timestamp spread over the recent past so seeded data
// does not all share one creation instant.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rnd.Intn(maxDays)
	hoursBack := f.rnd.Intn(24)
	minsBack := f.rnd.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}

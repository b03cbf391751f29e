// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultComicCategory is assigned when a listing does not name a category.
const DefaultComicCategory = "Independiente"

// Comic represents a listing published by a seller. Comics are hard-deleted;
// deleting one removes its trade offers and wish-list rows in the same
// transaction (see repository.ComicRepository.Delete).
type Comic struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Publisher   string          `gorm:"not null" json:"publisher"`
	Edition     string          `gorm:"not null" json:"edition"`
	Condition   string          `gorm:"not null" json:"condition"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Image       string          `json:"image"`
	SellerID    uint            `gorm:"not null;index" json:"seller_id"`
	Seller      User            `gorm:"foreignKey:SellerID" json:"-"`
	IsSold      bool            `gorm:"not null;default:false;index" json:"is_sold"`
	Category    string          `gorm:"not null;default:'Independiente'" json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ComicDetail is the listing payload with the seller's public profile embedded.
type ComicDetail struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Publisher   string          `json:"publisher"`
	Edition     string          `json:"edition"`
	Condition   string          `json:"condition"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Seller      UserShort       `json:"seller"`
	IsSold      bool            `json:"is_sold"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Detail returns the API projection of the comic. The Seller association must
// be loaded.
func (c *Comic) Detail() ComicDetail {
	return ComicDetail{
		ID:          c.ID,
		Title:       c.Title,
		Publisher:   c.Publisher,
		Edition:     c.Edition,
		Condition:   c.Condition,
		Description: c.Description,
		Price:       c.Price,
		Image:       c.Image,
		Seller:      c.Seller.Short(),
		IsSold:      c.IsSold,
		Category:    c.Category,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ComicDetails maps a slice of comics to their API projection.
func ComicDetails(comics []Comic) []ComicDetail {
	out := make([]ComicDetail, 0, len(comics))
	for i := range comics {
		out = append(out, comics[i].Detail())
	}
	return out
}

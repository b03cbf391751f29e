// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// OfferStatus is the lifecycle state of a trade offer.
type OfferStatus int

const (
	// OfferStatusPending is the initial state of every offer.
	OfferStatusPending OfferStatus = 0
	// OfferStatusAccepted marks the single winning offer on a comic. Terminal.
	OfferStatusAccepted OfferStatus = 1
	// OfferStatusRejected marks a declined or outbid offer. Terminal.
	OfferStatusRejected OfferStatus = 2
)

// Terminal reports whether the status admits no further transitions.
func (s OfferStatus) Terminal() bool {
	return s == OfferStatusAccepted || s == OfferStatusRejected
}

// Valid reports whether the value is a known offer status.
func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusPending, OfferStatusAccepted, OfferStatusRejected:
		return true
	}
	return false
}

// TradeOffer proposes a trade against a specific comic listing. SellerID is
// denormalized from the comic's seller at creation time so that per-seller
// queries never need a join. Invariant: at most one offer per comic may be
// accepted; acceptance force-rejects every sibling in the same transaction.
type TradeOffer struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OfferType   string      `gorm:"not null" json:"offer_type"`
	Title       string      `gorm:"not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`
	ComicID     uint        `gorm:"not null;index" json:"comic_id"`
	Comic       Comic       `gorm:"foreignKey:ComicID" json:"-"`
	SellerID    uint        `gorm:"not null;index" json:"seller_id"`
	Seller      User        `gorm:"foreignKey:SellerID" json:"-"`
	TraderID    uint        `gorm:"not null;index" json:"trader_id"`
	Trader      User        `gorm:"foreignKey:TraderID" json:"-"`
	Status      OfferStatus `gorm:"not null;default:0;index" json:"status"`
	Image       string      `json:"image"`
	Date        time.Time   `gorm:"not null" json:"date"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TradeOfferDetail embeds the comic and both parties' public profiles.
type TradeOfferDetail struct {
	ID          uint        `json:"id"`
	OfferType   string      `json:"offer_type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Comic       ComicDetail `json:"comic"`
	Seller      UserShort   `json:"seller"`
	Trader      UserShort   `json:"trader"`
	Status      OfferStatus `json:"status"`
	Image       string      `json:"image"`
	Date        time.Time   `json:"date"`
}

// Detail returns the API projection of the offer. Comic (with its seller),
// Seller and Trader associations must be loaded.
func (o *TradeOffer) Detail() TradeOfferDetail {
	return TradeOfferDetail{
		ID:          o.ID,
		OfferType:   o.OfferType,
		Title:       o.Title,
		Description: o.Description,
		Comic:       o.Comic.Detail(),
		Seller:      o.Seller.Short(),
		Trader:      o.Trader.Short(),
		Status:      o.Status,
		Image:       o.Image,
		Date:        o.Date,
	}
}

// TradeOfferDetails maps a slice of offers to their API projection.
func TradeOfferDetails(offers []TradeOffer) []TradeOfferDetail {
	out := make([]TradeOfferDetail, 0, len(offers))
	for i := range offers {
		out = append(out, offers[i].Detail())
	}
	return out
}

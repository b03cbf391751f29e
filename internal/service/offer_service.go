package service

import (
	"context"
	"time"

	"trademaster/internal/middleware"
	"trademaster/internal/models"
	"trademaster/internal/repository"
	"trademaster/internal/validation"
)

// OfferService handles trade offers against comic listings.
type OfferService struct {
	offerRepo repository.TradeOfferRepository
	comicRepo repository.ComicRepository
}

// NewOfferService returns a new OfferService.
func NewOfferService(offerRepo repository.TradeOfferRepository, comicRepo repository.ComicRepository) *OfferService {
	return &OfferService{offerRepo: offerRepo, comicRepo: comicRepo}
}

// CreateOfferInput carries the offer payload. TraderID comes from the
// authenticated caller; SellerID is stamped from the target comic.
type CreateOfferInput struct {
	TraderID    uint
	ComicID     uint
	OfferType   string
	Title       string
	Description string
	Image       string
}

// OfferInbox groups the caller's offers by role.
type OfferInbox struct {
	Received []models.TradeOffer
	Sent     []models.TradeOffer
}

// Create records a new pending offer against a comic. The comic must exist
// and still be available, and sellers cannot bid on their own listings.
func (s *OfferService) Create(ctx context.Context, in CreateOfferInput) (*models.TradeOffer, error) {
	if err := validation.ValidateOfferFields(in.OfferType, in.Title, in.Description); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comic, err := s.comicRepo.GetByID(ctx, in.ComicID)
	if err != nil {
		return nil, err
	}
	if comic.IsSold {
		return nil, models.NewValidationError("Comic has already been sold")
	}
	if comic.SellerID == in.TraderID {
		return nil, models.NewValidationError("You cannot make an offer on your own comic")
	}

	offer := &models.TradeOffer{
		OfferType:   in.OfferType,
		Title:       in.Title,
		Description: in.Description,
		ComicID:     comic.ID,
		SellerID:    comic.SellerID,
		TraderID:    in.TraderID,
		Status:      models.OfferStatusPending,
		Image:       in.Image,
		Date:        time.Now().UTC(),
	}
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return s.offerRepo.GetByID(ctx, offer.ID)
}

// Inbox returns the offers received on the caller's listings and the offers
// the caller has sent.
func (s *OfferService) Inbox(ctx context.Context, userID uint) (*OfferInbox, error) {
	received, err := s.offerRepo.ListBySeller(ctx, userID)
	if err != nil {
		return nil, err
	}
	sent, err := s.offerRepo.ListByTrader(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &OfferInbox{Received: received, Sent: sent}, nil
}

// Get returns an offer's detail. Only the seller of the target comic may
// inspect it.
func (s *OfferService) Get(ctx context.Context, offerID, userID uint) (*models.TradeOffer, error) {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.SellerID != userID {
		// Offer detail is private to the seller; non-sellers learn nothing,
		// not even that the offer exists.
		return nil, models.NewNotFoundError("Trade offer", offerID)
	}
	return offer, nil
}

// UpdateStatus resolves a pending offer. Only accept and reject are valid
// transitions; accepting force-rejects pending siblings and marks the comic
// sold.
func (s *OfferService) UpdateStatus(ctx context.Context, offerID, sellerID uint, status models.OfferStatus) (*models.TradeOffer, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("Unknown offer status")
	}
	if status == models.OfferStatusPending {
		return nil, models.NewValidationError("Offers cannot be reset to pending")
	}

	result, err := s.offerRepo.UpdateStatus(ctx, offerID, sellerID, status)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.OfferStatusAccepted:
		middleware.OfferResolutions.WithLabelValues("accepted").Inc()
		middleware.ComicsSold.Inc()
	case models.OfferStatusRejected:
		middleware.OfferResolutions.WithLabelValues("rejected").Inc()
	}
	if result.RejectedSiblings > 0 {
		middleware.OfferResolutions.WithLabelValues("rejected").Add(float64(result.RejectedSiblings))
	}

	return s.offerRepo.GetByID(ctx, offerID)
}

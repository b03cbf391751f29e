package service

import (
	"context"

	"trademaster/internal/models"
	"trademaster/internal/repository"
)

// WishListService handles per-user wish lists.
type WishListService struct {
	wishRepo  repository.WishListRepository
	comicRepo repository.ComicRepository
}

// NewWishListService returns a new WishListService.
func NewWishListService(wishRepo repository.WishListRepository, comicRepo repository.ComicRepository) *WishListService {
	return &WishListService{wishRepo: wishRepo, comicRepo: comicRepo}
}

// Add puts a comic on the caller's wish list. The comic must exist; adding
// the same comic twice is a validation error.
func (s *WishListService) Add(ctx context.Context, userID, comicID uint) (*models.WishListItem, error) {
	comic, err := s.comicRepo.GetByID(ctx, comicID)
	if err != nil {
		return nil, err
	}

	item := &models.WishListItem{
		UserID:  userID,
		ComicID: comic.ID,
	}
	if err := s.wishRepo.Add(ctx, item); err != nil {
		return nil, err
	}
	item.Comic = *comic
	return item, nil
}

// List returns the caller's wish list with each comic's detail embedded.
func (s *WishListService) List(ctx context.Context, userID uint) ([]models.WishListItem, error) {
	return s.wishRepo.ListByUser(ctx, userID)
}

// Remove deletes the caller's association with the comic.
func (s *WishListService) Remove(ctx context.Context, userID, comicID uint) error {
	return s.wishRepo.Remove(ctx, userID, comicID)
}

package service

import (
	"context"
	"strings"

	"trademaster/internal/models"
	"trademaster/internal/repository"
	"trademaster/internal/validation"

	"github.com/shopspring/decimal"
)

// ComicService handles comic listings.
type ComicService struct {
	comicRepo repository.ComicRepository
}

// NewComicService returns a new ComicService.
func NewComicService(comicRepo repository.ComicRepository) *ComicService {
	return &ComicService{comicRepo: comicRepo}
}

// CreateComicInput carries the listing payload. SellerID always comes from
// the authenticated caller, never from the request body.
type CreateComicInput struct {
	SellerID    uint
	Title       string
	Publisher   string
	Edition     string
	Condition   string
	Description string
	Price       decimal.Decimal
	Category    string
}

// UpdateComicInput carries a partial listing update. Nil fields are left
// unchanged; a supplied field must pass the same checks as a create, so
// sending a blank value is a validation error rather than a no-op.
type UpdateComicInput struct {
	ComicID     uint
	SellerID    uint
	Title       *string
	Publisher   *string
	Edition     *string
	Condition   *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
}

// List returns available (unsold) listings.
func (s *ComicService) List(ctx context.Context, limit, offset int) ([]models.Comic, error) {
	return s.comicRepo.ListAvailable(ctx, limit, offset)
}

// ListMine returns all listings owned by the seller, sold ones included.
func (s *ComicService) ListMine(ctx context.Context, sellerID uint) ([]models.Comic, error) {
	return s.comicRepo.ListBySeller(ctx, sellerID)
}

// Get returns a single listing with its seller loaded.
func (s *ComicService) Get(ctx context.Context, id uint) (*models.Comic, error) {
	return s.comicRepo.GetByID(ctx, id)
}

// Create publishes a new listing for the seller.
func (s *ComicService) Create(ctx context.Context, in CreateComicInput) (*models.Comic, error) {
	if err := validation.ValidateComicFields(in.Title, in.Publisher, in.Edition, in.Condition, in.Description, in.Price); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	category := in.Category
	if category == "" {
		category = models.DefaultComicCategory
	}

	comic := &models.Comic{
		Title:       in.Title,
		Publisher:   in.Publisher,
		Edition:     in.Edition,
		Condition:   in.Condition,
		Description: in.Description,
		Price:       in.Price,
		SellerID:    in.SellerID,
		Category:    category,
	}
	if err := s.comicRepo.Create(ctx, comic); err != nil {
		return nil, err
	}
	return s.comicRepo.GetByID(ctx, comic.ID)
}

// Update applies a partial update to a listing the caller owns.
func (s *ComicService) Update(ctx context.Context, in UpdateComicInput) (*models.Comic, error) {
	comic, err := s.comicRepo.GetByID(ctx, in.ComicID)
	if err != nil {
		return nil, err
	}
	if comic.SellerID != in.SellerID {
		return nil, models.NewUnauthorizedError("You can only edit your own comics")
	}

	if in.Title != nil {
		comic.Title = *in.Title
	}
	if in.Publisher != nil {
		comic.Publisher = *in.Publisher
	}
	if in.Edition != nil {
		comic.Edition = *in.Edition
	}
	if in.Condition != nil {
		comic.Condition = *in.Condition
	}
	if in.Description != nil {
		comic.Description = *in.Description
	}
	if in.Price != nil {
		comic.Price = *in.Price
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return nil, models.NewValidationError("category must not be blank")
		}
		comic.Category = *in.Category
	}

	// A supplied-but-blank field lands here and fails the same checks as a
	// create, rather than being silently skipped.
	if err := validation.ValidateComicFields(comic.Title, comic.Publisher, comic.Edition, comic.Condition, comic.Description, comic.Price); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if err := s.comicRepo.Update(ctx, comic); err != nil {
		return nil, err
	}
	return comic, nil
}

// Delete removes a listing the caller owns, cascading to its offers and
// wish-list rows.
func (s *ComicService) Delete(ctx context.Context, comicID, sellerID uint) error {
	comic, err := s.comicRepo.GetByID(ctx, comicID)
	if err != nil {
		return err
	}
	if comic.SellerID != sellerID {
		return models.NewUnauthorizedError("You can only delete your own comics")
	}
	return s.comicRepo.Delete(ctx, comicID)
}

// SetImage stores the processed cover image path on a listing the caller owns.
func (s *ComicService) SetImage(ctx context.Context, comicID, sellerID uint, path string) (*models.Comic, error) {
	comic, err := s.comicRepo.GetByID(ctx, comicID)
	if err != nil {
		return nil, err
	}
	if comic.SellerID != sellerID {
		return nil, models.NewUnauthorizedError("You can only edit your own comics")
	}
	comic.Image = path
	if err := s.comicRepo.Update(ctx, comic); err != nil {
		return nil, err
	}
	return comic, nil
}

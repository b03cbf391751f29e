package server

import (
	"trademaster/internal/models"
	"trademaster/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// comicRequest is the create payload for listings.
type comicRequest struct {
	Title       string           `json:"title"`
	Publisher   string           `json:"publisher"`
	Edition     string           `json:"edition"`
	Condition   string           `json:"condition"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
}

// comicUpdateRequest is the partial update payload. An absent field leaves the
// column unchanged; a present-but-blank field is rejected.
type comicUpdateRequest struct {
	Title       *string          `json:"title"`
	Publisher   *string          `json:"publisher"`
	Edition     *string          `json:"edition"`
	Condition   *string          `json:"condition"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
}

// GetComics handles GET /comics
// @Summary Browse available comics
// @Description List unsold comics, newest first
// @Tags comics
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} object{message=string,data=[]models.ComicDetail}
// @Router /comics [get]
func (s *Server) GetComics(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	comics, err := s.comicService.List(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comics retrieved successfully", models.ComicDetails(comics))
}

// GetMyComics handles GET /comics/mine
// @Summary List own comics
// @Description List the caller's comics, sold ones included
// @Tags comics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,data=[]models.ComicDetail}
// @Failure 401 {object} models.ErrorResponse
// @Router /comics/mine [get]
func (s *Server) GetMyComics(c *fiber.Ctx) error {
	comics, err := s.comicService.ListMine(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comics retrieved successfully", models.ComicDetails(comics))
}

// GetComic handles GET /comics/:id
// @Summary Get a comic
// @Tags comics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comic ID"
// @Success 200 {object} object{message=string,data=models.ComicDetail}
// @Failure 404 {object} models.ErrorResponse
// @Router /comics/{id} [get]
func (s *Server) GetComic(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comic, err := s.comicService.Get(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comic retrieved successfully", comic.Detail())
}

// CreateComic handles POST /comics
// @Summary Publish a comic listing
// @Description The seller is always the authenticated caller
// @Tags comics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body comicRequest true "Listing payload"
// @Success 201 {object} object{message=string,data=models.ComicDetail}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /comics [post]
func (s *Server) CreateComic(c *fiber.Ctx) error {
	var req comicRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	price := decimal.Zero
	if req.Price != nil {
		price = *req.Price
	}

	comic, err := s.comicService.Create(c.Context(), service.CreateComicInput{
		SellerID:    currentUserID(c),
		Title:       req.Title,
		Publisher:   req.Publisher,
		Edition:     req.Edition,
		Condition:   req.Condition,
		Description: req.Description,
		Price:       price,
		Category:    req.Category,
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "Comic created successfully", comic.Detail())
}

// UpdateComic handles PUT /comics/:id
// @Summary Update a comic listing
// @Description Partial update of a listing the caller owns
// @Tags comics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comic ID"
// @Param request body comicUpdateRequest true "Listing update"
// @Success 200 {object} object{message=string,data=models.ComicDetail}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comics/{id} [put]
func (s *Server) UpdateComic(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req comicUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comic, err := s.comicService.Update(c.Context(), service.UpdateComicInput{
		ComicID:     id,
		SellerID:    currentUserID(c),
		Title:       req.Title,
		Publisher:   req.Publisher,
		Edition:     req.Edition,
		Condition:   req.Condition,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comic updated successfully", comic.Detail())
}

// DeleteComic handles DELETE /comics/:id
// @Summary Delete a comic listing
// @Description Removes the listing, its trade offers and wish-list rows
// @Tags comics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comic ID"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comics/{id} [delete]
func (s *Server) DeleteComic(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.comicService.Delete(c.Context(), id, currentUserID(c)); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comic deleted successfully", nil)
}

// UploadComicImage handles PUT /comics/:id/image
// @Summary Upload a comic cover image
// @Tags comics
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comic ID"
// @Param image formData file true "Image file"
// @Success 200 {object} object{message=string,data=models.ComicDetail}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comics/{id}/image [put]
func (s *Server) UploadComicImage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	content, err := s.readUpload(c)
	if err != nil {
		return fail(c, err)
	}

	path, err := s.imageService.Process(content)
	if err != nil {
		return fail(c, err)
	}

	comic, err := s.comicService.SetImage(c.Context(), id, currentUserID(c), path)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Image updated successfully", comic.Detail())
}

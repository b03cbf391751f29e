package server

import (
	"trademaster/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetWishList handles GET /wishlist
// @Summary List own wish list
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,data=[]models.WishListEntry}
// @Failure 401 {object} models.ErrorResponse
// @Router /wishlist [get]
func (s *Server) GetWishList(c *fiber.Ctx) error {
	items, err := s.wishService.List(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Wish list retrieved successfully", models.WishListEntries(items))
}

// AddWishListItem handles POST /wishlist/:comic_id
// @Summary Add a comic to the wish list
// @Description Adding the same comic twice is rejected
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param comic_id path int true "Comic ID"
// @Success 201 {object} object{message=string,data=models.WishListEntry}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /wishlist/{comic_id} [post]
func (s *Server) AddWishListItem(c *fiber.Ctx) error {
	comicID, err := s.parseID(c, "comic_id")
	if err != nil {
		return nil
	}

	item, err := s.wishService.Add(c.Context(), currentUserID(c), comicID)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "Comic added to wish list", item.Entry())
}

// RemoveWishListItem handles DELETE /wishlist/:comic_id
// @Summary Remove a comic from the wish list
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param comic_id path int true "Comic ID"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /wishlist/{comic_id} [delete]
func (s *Server) RemoveWishListItem(c *fiber.Ctx) error {
	comicID, err := s.parseID(c, "comic_id")
	if err != nil {
		return nil
	}

	if err := s.wishService.Remove(c.Context(), currentUserID(c), comicID); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comic removed from wish list", nil)
}

package server

import (
	"trademaster/internal/models"
	"trademaster/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateOffer handles POST /comics/:id/offers
// @Summary Make a trade offer on a comic
// @Description The trader is the caller; the seller is stamped from the comic
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comic ID"
// @Param request body object{offer_type=string,title=string,description=string,image=string} true "Offer payload"
// @Success 201 {object} object{message=string,data=models.TradeOfferDetail}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comics/{id}/offers [post]
func (s *Server) CreateOffer(c *fiber.Ctx) error {
	comicID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		OfferType   string `json:"offer_type"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	offer, err := s.offerService.Create(c.Context(), service.CreateOfferInput{
		TraderID:    currentUserID(c),
		ComicID:     comicID,
		OfferType:   req.OfferType,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "Trade offer created successfully", offer.Detail())
}

// GetMyOffers handles GET /offers
// @Summary List own trade offers
// @Description Offers received on the caller's comics and offers the caller sent
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,data=object{received=[]models.TradeOfferDetail,sent=[]models.TradeOfferDetail}}
// @Failure 401 {object} models.ErrorResponse
// @Router /offers [get]
func (s *Server) GetMyOffers(c *fiber.Ctx) error {
	inbox, err := s.offerService.Inbox(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Trade offers retrieved successfully", fiber.Map{
		"received": models.TradeOfferDetails(inbox.Received),
		"sent":     models.TradeOfferDetails(inbox.Sent),
	})
}

// GetOffer handles GET /offers/:id
// @Summary Get a trade offer
// @Description Only the seller of the target comic may inspect an offer
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Success 200 {object} object{message=string,data=models.TradeOfferDetail}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /offers/{id} [get]
func (s *Server) GetOffer(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	offer, err := s.offerService.Get(c.Context(), id, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Trade offer retrieved successfully", offer.Detail())
}

// UpdateOfferStatus handles PUT /offers/:id
// @Summary Accept or reject a trade offer
// @Description Accepting force-rejects pending sibling offers and marks the comic sold
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Param request body object{status=int} true "New status (1 accepted, 2 rejected)"
// @Success 200 {object} object{message=string,data=models.TradeOfferDetail}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /offers/{id} [put]
func (s *Server) UpdateOfferStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status *int `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil || req.Status == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status is required"))
	}

	offer, err := s.offerService.UpdateStatus(c.Context(), id, currentUserID(c), models.OfferStatus(*req.Status))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Trade offer updated successfully", offer.Detail())
}

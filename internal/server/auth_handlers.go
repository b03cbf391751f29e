// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"trademaster/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /auth/login
// @Summary User login
// @Description Authenticate with username and password and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Login credentials"
// @Success 200 {object} object{message=string,data=object{token=string,user=models.UserProfile}}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return respond(c, fiber.StatusOK, "Login successful", fiber.Map{
		"token": token,
		"user":  user.Profile(),
	})
}

// Logout handles POST /auth/logout
// @Summary User logout
// @Description Acknowledge logout; clients discard the token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	// Tokens are stateless; logout is an acknowledgment and the client
	// discards its copy.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout successful",
	})
}

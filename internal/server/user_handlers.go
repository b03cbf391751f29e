package server

import (
	"io"

	"trademaster/internal/models"
	"trademaster/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /users
// @Summary Register a new user
// @Description Create an account and return a JWT token
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{name=string,last_name=string,username=string,email=string,phone=string,password=string,password_confirm=string} true "Registration payload"
// @Success 201 {object} object{message=string,data=object{token=string,user=models.UserProfile}}
// @Failure 400 {object} models.ErrorResponse
// @Router /users [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name            string `json:"name"`
		LastName        string `json:"last_name"`
		Username        string `json:"username"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirm"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.Context(), service.RegisterInput{
		Name:            req.Name,
		LastName:        req.LastName,
		Username:        req.Username,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return fail(c, err)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return respond(c, fiber.StatusCreated, "User registered successfully", fiber.Map{
		"token": token,
		"user":  user.Profile(),
	})
}

// GetMyProfile handles GET /users/me
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,data=models.UserProfile}
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Profile retrieved successfully", user.Profile())
}

// UpdateMyProfile handles PUT /users/me
// @Summary Update own profile
// @Description Apply a partial update; empty fields are left unchanged
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,last_name=string,email=string,phone=string,password=string,password_confirm=string} true "Profile update"
// @Success 200 {object} object{message=string,data=models.UserProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Name            string `json:"name"`
		LastName        string `json:"last_name"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirm"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:          currentUserID(c),
		Name:            req.Name,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Profile updated successfully", user.Profile())
}

// UploadMyImage handles PUT /users/me/image
// @Summary Upload own avatar
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} object{message=string,data=models.UserProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me/image [put]
func (s *Server) UploadMyImage(c *fiber.Ctx) error {
	content, err := s.readUpload(c)
	if err != nil {
		return fail(c, err)
	}

	path, err := s.imageService.Process(content)
	if err != nil {
		return fail(c, err)
	}

	user, err := s.userService.SetImage(c.Context(), currentUserID(c), path)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Image updated successfully", user.Profile())
}

// readUpload reads the "image" multipart form file into memory.
func (s *Server) readUpload(c *fiber.Ctx) ([]byte, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, models.NewValidationError("Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, models.NewValidationError("Unable to read uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, models.NewValidationError("Unable to read uploaded file")
	}
	return content, nil
}

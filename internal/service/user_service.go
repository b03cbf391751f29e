// Package service implements the application's business logic.
package service

import (
	"context"

	"trademaster/internal/models"
	"trademaster/internal/repository"
	"trademaster/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles account registration, authentication and profiles.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Name            string
	LastName        string
	Username        string
	Email           string
	Phone           string
	Password        string
	PasswordConfirm string
}

// UpdateProfileInput carries the profile update payload. Empty fields are
// left unchanged.
type UpdateProfileInput struct {
	UserID          uint
	Name            string
	LastName        string
	Email           string
	Phone           string
	Password        string
	PasswordConfirm string
}

// Register creates a new account. Usernames and emails must be unique; the
// password is stored as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.LastName == "" {
		return nil, models.NewValidationError("Name and last name are required")
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Password != in.PasswordConfirm {
		return nil, models.NewValidationError("Passwords do not match")
	}

	email := validation.NormalizeEmail(in.Email)

	if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("Email is already registered")
	}
	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("Username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		LastName: in.LastName,
		Username: in.Username,
		Email:    email,
		Phone:    in.Phone,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials. An unknown username is reported as a
// validation error; a known username with the wrong password is unauthorized.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, models.NewValidationError("Username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewValidationError("Unknown username")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// GetProfile returns the account for the given id.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update to the caller's own account.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = validation.NormalizeEmail(in.Email)
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if in.Password != in.PasswordConfirm {
			return nil, models.NewValidationError("Passwords do not match")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetImage stores the processed avatar path on the account.
func (s *UserService) SetImage(ctx context.Context, userID uint, path string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Image = path
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

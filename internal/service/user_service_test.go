package service

import (
	"context"
	"testing"

	"trademaster/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:            "Peter",
		LastName:        "Parker",
		Username:        "spidey",
		Email:           "peter@example.com",
		Password:        "WebSlinger1",
		PasswordConfirm: "WebSlinger1",
	}
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		mutate       func(*RegisterInput)
		mockSetup    func(*MockUserRepository)
		expectedCode string
	}{
		{
			name: "Success",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "peter@example.com").Return(nil, nil)
				repo.On("GetByUsername", mock.Anything, "spidey").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:         "Password mismatch",
			mutate:       func(in *RegisterInput) { in.PasswordConfirm = "SomethingElse1" },
			expectedCode: "VALIDATION_ERROR",
		},
		{
			name:         "Weak password",
			mutate:       func(in *RegisterInput) { in.Password = "short"; in.PasswordConfirm = "short" },
			expectedCode: "VALIDATION_ERROR",
		},
		{
			name:         "Missing name",
			mutate:       func(in *RegisterInput) { in.Name = "" },
			expectedCode: "VALIDATION_ERROR",
		},
		{
			name:         "Bad email",
			mutate:       func(in *RegisterInput) { in.Email = "not-an-email" },
			expectedCode: "VALIDATION_ERROR",
		},
		{
			name: "Duplicate email",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "peter@example.com").
					Return(&models.User{ID: 5, Email: "peter@example.com"}, nil)
			},
			expectedCode: "VALIDATION_ERROR",
		},
		{
			name: "Duplicate username",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "peter@example.com").Return(nil, nil)
				repo.On("GetByUsername", mock.Anything, "spidey").
					Return(&models.User{ID: 5, Username: "spidey"}, nil)
			},
			expectedCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(repo)
			}
			svc := NewUserService(repo)

			in := validRegisterInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			user, err := svc.Register(ctx, in)
			if tt.expectedCode != "" {
				var appErr *models.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.expectedCode, appErr.Code)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			// Stored password is a bcrypt hash, never plaintext
			assert.NotEqual(t, in.Password, user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)))
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("WebSlinger1"), bcrypt.DefaultCost)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsername", mock.Anything, "spidey").
			Return(&models.User{ID: 1, Username: "spidey", Password: string(hash)}, nil)
		svc := NewUserService(repo)

		user, err := svc.Authenticate(ctx, "spidey", "WebSlinger1")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("Unknown username is a validation error", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)
		svc := NewUserService(repo)

		_, err := svc.Authenticate(ctx, "ghost", "WebSlinger1")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("Wrong password is unauthorized", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsername", mock.Anything, "spidey").
			Return(&models.User{ID: 1, Username: "spidey", Password: string(hash)}, nil)
		svc := NewUserService(repo)

		_, err := svc.Authenticate(ctx, "spidey", "WrongPassword1")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})

	t.Run("Missing credentials", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository))

		_, err := svc.Authenticate(ctx, "", "")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestUserService_UpdateProfile_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	existing := &models.User{
		ID: 1, Name: "Peter", LastName: "Parker",
		Email: "peter@example.com", Phone: "555-0100",
	}
	repo.On("GetByID", mock.Anything, uint(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	svc := NewUserService(repo)

	user, err := svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID: 1,
		Phone:  "555-0199",
	})
	require.NoError(t, err)
	// Empty fields are left alone
	assert.Equal(t, "Peter", user.Name)
	assert.Equal(t, "peter@example.com", user.Email)
	assert.Equal(t, "555-0199", user.Phone)
}

func TestUserService_UpdateProfile_PasswordMismatch(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)
	svc := NewUserService(repo)

	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID:          1,
		Password:        "NewPassword1",
		PasswordConfirm: "Different1",
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"trademaster/internal/config"
	"trademaster/internal/models"
	"trademaster/internal/repository"
	"trademaster/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Comic{},
		&models.TradeOffer{},
		&models.WishListItem{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// newTestServer wires real repositories and services over an in-memory
// database. Redis and Prometheus middleware stay out of the picture.
func newTestServer(t *testing.T, db *gorm.DB) *Server {
	t.Helper()

	userRepo := repository.NewUserRepository(db, nil)
	comicRepo := repository.NewComicRepository(db, nil)
	offerRepo := repository.NewTradeOfferRepository(db, nil)
	wishRepo := repository.NewWishListRepository(db)

	s := &Server{
		config: &config.Config{
			JWTSecret: "test-secret-key-0123456789abcdef",
			Env:       "test",
		},
		db:        db,
		userRepo:  userRepo,
		comicRepo: comicRepo,
		offerRepo: offerRepo,
		wishRepo:  wishRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.comicService = service.NewComicService(comicRepo)
	s.offerService = service.NewOfferService(offerRepo, comicRepo)
	s.wishService = service.NewWishListService(wishRepo, comicRepo)
	s.imageService = service.NewImageService(nil)
	return s
}

// asUser injects the authenticated user like AuthRequired would.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Test",
		LastName: "User",
		Username: username,
		Email:    username + "@example.com",
		Password: "pw",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func TestAppErrorHandler(t *testing.T) {
	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)

	app := s.newApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("kaboom: connection string leaked")
	})
	app.Get("/gone", func(c *fiber.Ctx) error {
		return models.NewNotFoundError("Comic", 7)
	})

	t.Run("Unhandled errors are sanitized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "INTERNAL_ERROR", body.Code)
		assert.NotContains(t, body.Message, "kaboom")
		assert.Empty(t, body.Details)
	})

	t.Run("Application errors keep their status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/gone", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "NOT_FOUND", body.Code)
	})

	t.Run("Unmatched routes stay 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func createTestComic(t *testing.T, db *gorm.DB, sellerID uint, title string) *models.Comic {
	t.Helper()
	comic := &models.Comic{
		Title:       title,
		Publisher:   "Marvel",
		Edition:     "#1",
		Condition:   "Good",
		Description: "A test listing",
		Price:       decimal.NewFromInt(50),
		SellerID:    sellerID,
		Category:    models.DefaultComicCategory,
	}
	if err := db.Create(comic).Error; err != nil {
		t.Fatalf("create comic %s: %v", title, err)
	}
	return comic
}

// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User represents a registered account. The password column always holds a
// bcrypt hash, never plaintext.
type User struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	LastName    string          `gorm:"not null" json:"last_name"`
	Username    string          `gorm:"unique;not null;index:idx_users_login" json:"username"`
	Email       string          `gorm:"unique;not null;index:idx_users_login" json:"email"`
	Password    string          `gorm:"not null" json:"-"`
	Phone       string          `json:"phone"`
	Image       string          `json:"image"`
	TradesCount int             `gorm:"not null;default:0" json:"trades_count"`
	Rating      decimal.Decimal `gorm:"type:numeric(3,2);not null;default:0" json:"rating"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	Comics []Comic `gorm:"foreignKey:SellerID" json:"comics,omitempty"`
}

// UserProfile is the full profile payload returned to the account owner.
type UserProfile struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
}

// UserShort is the public seller/trader payload embedded in comic and offer detail.
type UserShort struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	LastName    string          `json:"last_name"`
	Username    string          `json:"username"`
	TradesCount int             `json:"trades_count"`
	Rating      decimal.Decimal `json:"rating"`
}

// Profile returns the owner-facing projection of the user.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Image:    u.Image,
	}
}

// Short returns the public projection of the user.
func (u *User) Short() UserShort {
	return UserShort{
		ID:          u.ID,
		Name:        u.Name,
		LastName:    u.LastName,
		Username:    u.Username,
		TradesCount: u.TradesCount,
		Rating:      u.Rating,
	}
}

package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxTitleLength is the maximum length of a listing or offer title.
	MaxTitleLength = 200
	// MaxDescriptionLength caps free-text description fields.
	MaxDescriptionLength = 5000
)

// ValidateComicFields checks the required fields of a comic listing payload.
func ValidateComicFields(title, publisher, edition, condition, description string, price decimal.Decimal) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title must be at most %d characters long", MaxTitleLength)
	}
	if strings.TrimSpace(publisher) == "" {
		return fmt.Errorf("publisher is required")
	}
	if strings.TrimSpace(edition) == "" {
		return fmt.Errorf("edition is required")
	}
	if strings.TrimSpace(condition) == "" {
		return fmt.Errorf("condition is required")
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description must be at most %d characters long", MaxDescriptionLength)
	}
	if price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}

// ValidateOfferFields checks the required fields of a trade offer payload.
func ValidateOfferFields(offerType, title, description string) error {
	if strings.TrimSpace(offerType) == "" {
		return fmt.Errorf("offer_type is required")
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title must be at most %d characters long", MaxTitleLength)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description must be at most %d characters long", MaxDescriptionLength)
	}
	return nil
}

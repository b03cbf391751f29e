package database

import "trademaster/internal/models"

// PersistentModels returns every model that participates in schema migration.
// Keep this list in sync when adding new persistent types.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Comic{},
		&models.TradeOffer{},
		&models.WishListItem{},
	}
}

// Package models contains data structures for the application's domain models.
package models

import "time"

// WishListItem is a (user, comic) membership row. The composite unique index
// keeps the wish list a set: adding the same comic twice fails the insert.
type WishListItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_comic" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	ComicID   uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_comic" json:"comic_id"`
	Comic     Comic     `gorm:"foreignKey:ComicID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name aligned with the wish-list wording used by the API.
func (WishListItem) TableName() string {
	return "wish_list_items"
}

// WishListEntry is the API payload: the row id plus the embedded comic detail.
type WishListEntry struct {
	ID    uint        `json:"id"`
	Comic ComicDetail `json:"comic"`
}

// Entry returns the API projection. The Comic association (with its seller)
// must be loaded.
func (w *WishListItem) Entry() WishListEntry {
	return WishListEntry{
		ID:    w.ID,
		Comic: w.Comic.Detail(),
	}
}

// WishListEntries maps wish-list rows to their API projection.
func WishListEntries(items []WishListItem) []WishListEntry {
	out := make([]WishListEntry, 0, len(items))
	for i := range items {
		out = append(out, items[i].Entry())
	}
	return out
}

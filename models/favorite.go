package models

import "time"

// Favorite marks a product as saved by a user. Membership only, no extra state.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_fav_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_fav_user_product;not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time `json:"created_at"`
}

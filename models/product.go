package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryBakery     Category = "bakery"
	CategoryVegetables Category = "vegetables"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryFruits     Category = "fruits"
	CategoryBeverages  Category = "beverages"
	CategoryOther      Category = "other"
)

// ValidCategory reports whether s is one of the catalog categories.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryBakery, CategoryVegetables, CategoryDairy,
		CategoryMeat, CategoryFruits, CategoryBeverages, CategoryOther:
		return true
	}
	return false
}

type Product struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID        string         `gorm:"index;not null" json:"seller_id"`
	Seller          Profile        `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Name            string         `gorm:"not null" json:"name"`
	Description     string         `json:"description"`
	Category        Category       `gorm:"type:VARCHAR(20);not null" json:"category"`
	OriginalPrice   float64        `gorm:"not null" json:"original_price"`
	DiscountedPrice float64        `gorm:"not null" json:"discounted_price"` // must stay below OriginalPrice
	Quantity        int            `gorm:"not null;default:0" json:"quantity"`
	ExpiryDate      time.Time      `gorm:"not null" json:"expiry_date"`
	ImageURLs       pq.StringArray `gorm:"type:text" json:"image_urls"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

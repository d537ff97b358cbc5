package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Columns the catalog may sort by; anything else falls back to created_at.
var sortColumns = map[string]bool{
	"created_at":       true,
	"discounted_price": true,
	"expiry_date":      true,
}

// GetProducts lists the public catalog: active, in stock, not yet expired.
// Query params: category, search, min_price, max_price, sort_by, order.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !sortColumns[sortBy] {
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{}).
			Preload("Seller").
			Where("is_active = ?", true).
			Where("quantity > 0").
			Where("expiry_date >= ?", time.Now().Truncate(24*time.Hour))

		if search != "" {
			likePattern := "%" + search + "%"
			// ILIKE only exists on Postgres; SQLite's plain LIKE is already
			// case-insensitive for ASCII.
			like := "LIKE"
			if db.Dialector.Name() == "postgres" {
				like = "ILIKE"
			}
			query = query.Where(
				fmt.Sprintf("name %s ? OR description %s ?", like, like),
				likePattern, likePattern,
			)
		}

		if category != "" {
			if !models.ValidCategory(category) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			query = query.Where("category = ?", category)
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("discounted_price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("discounted_price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetSellerProducts lists the authenticated seller's own products, including
// inactive ones, for the dashboard.
func GetSellerProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var products []models.Product
		if err := db.
			Where("seller_id = ?", userIDVal).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

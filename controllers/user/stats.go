package userControllers

import (
	"net/http"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /seller/stats — the overview numbers for the seller dashboard:
// active listings, lifetime orders, completed revenue, orders waiting on
// the seller.
func GetSellerStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		var productsCount, ordersCount, pendingCount int64
		if err := db.Model(&models.Product{}).
			Where("seller_id = ? AND is_active = ?", sellerID, true).
			Count(&productsCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).
			Where("seller_id = ?", sellerID).
			Count(&ordersCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).
			Where("seller_id = ? AND status = ?", sellerID, models.OrderStatusPending).
			Count(&pendingCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		// Revenue counts completed orders only; cancelled and in-flight
		// orders have not earned anything yet.
		var totalRevenue float64
		if err := db.Model(&models.Order{}).
			Where("seller_id = ? AND status = ?", sellerID, models.OrderStatusCompleted).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&totalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products_count":       productsCount,
			"orders_count":         ordersCount,
			"total_revenue":        totalRevenue,
			"pending_orders_count": pendingCount,
		})
	}
}

package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusReady):
		return models.OrderStatusReady, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// TransitionOrderStatus moves an order along the fulfillment flow on behalf
// of its seller. Cancellation returns the reserved stock in the same
// transaction; completion never touches stock (it was reserved at checkout).
func TransitionOrderStatus(db *gorm.DB, orderID, sellerID string, next models.OrderStatus) (models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").Where("id = ?", orderID).First(&order).Error; err != nil {
			return err
		}
		if order.SellerID != sellerID {
			return ErrNotOrderSeller
		}
		if order.NeedsReview {
			return ErrOrderNeedsReview
		}
		if !order.Status.CanTransitionTo(next) {
			return &InvalidTransitionError{From: order.Status, To: next}
		}

		if next == models.OrderStatusCancelled {
			for _, item := range order.Items {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", item.ProductID).
					UpdateColumn("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error; err != nil {
					return err
				}
			}
		}

		// Conditional write: if another transition landed between the read
		// above and this point, zero rows match and the whole transaction
		// (including any restock) rolls back instead of double-applying.
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderConflict
		}
		order.Status = next
		return nil
	})

	return order, err
}

var (
	ErrNotOrderSeller   = errors.New("order belongs to another seller")
	ErrOrderNeedsReview = errors.New("order is under manual review and cannot be transitioned")
	ErrOrderConflict    = errors.New("order was updated concurrently, please retry")
)

type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return "cannot transition order from " + string(e.From) + " to " + string(e.To)
}

// -------- Handlers --------

// GET /user/orders — the buyer's order history
func GetBuyerOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("buyer_id = ?", userIDVal).
			Preload("Items").
			Preload("Seller").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /seller/orders — incoming orders for the seller's dashboard
func GetSellerOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("seller_id = ?", userIDVal).
			Preload("Items").
			Preload("Buyer").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /seller/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := TransitionOrderStatus(db, orderID, sellerID, newStatus)
		if err != nil {
			var transitionErr *InvalidTransitionError
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.Is(err, ErrNotOrderSeller):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			case errors.Is(err, ErrOrderNeedsReview), errors.Is(err, ErrOrderConflict), errors.As(err, &transitionErr):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": order})
	}
}

// GET /admin/orders — full order list for the admin surface
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Buyer").
			Preload("Seller").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address"`
	PhoneNumber     string `json:"phone_number"`
	Notes           string `json:"notes"`
}

// -------- Errors --------

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingAddress = errors.New("delivery address is required")
	ErrMissingPhone   = errors.New("phone number is required")
)

// StockShortage names one cart line requesting more than the product can supply.
type StockShortage struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// InsufficientStockError carries every offending line so the buyer sees the
// whole problem at once instead of fixing the cart one product at a time.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	names := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		names = append(names, fmt.Sprintf("%s (requested %d, available %d)", s.Name, s.Requested, s.Available))
	}
	return "insufficient stock for: " + strings.Join(names, ", ")
}

// Number of attempts at deleting an already-committed order when a later
// seller group fails. After that the order is flagged needs_review.
const rollbackAttempts = 3

// -------- Core Logic --------

// Checkout converts the buyer's cart into one pending order per distinct
// seller, reserving stock as it goes, and clears the cart on success.
//
// Each seller order commits in its own transaction. If a later seller group
// fails, the orders committed before it are rolled back (items deleted,
// stock returned); the buyer either gets every order or none. Stock is
// decremented with a conditional UPDATE so concurrent checkouts for the last
// units cannot drive a product's quantity negative.
func Checkout(db *gorm.DB, buyerID string, req CheckoutRequest) ([]models.Order, error) {
	address := strings.TrimSpace(req.DeliveryAddress)
	phone := strings.TrimSpace(req.PhoneNumber)
	if address == "" {
		return nil, ErrMissingAddress
	}
	if phone == "" {
		return nil, ErrMissingPhone
	}
	notes := strings.TrimSpace(req.Notes)

	var lines []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", buyerID).Find(&lines).Error; err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Pre-check the whole cart before writing anything
	var shortages []StockShortage
	for _, line := range lines {
		available := line.Product.Quantity
		if !line.Product.IsActive {
			available = 0
		}
		if line.Quantity > available {
			shortages = append(shortages, StockShortage{
				ProductID: line.ProductID,
				Name:      line.Product.Name,
				Requested: line.Quantity,
				Available: available,
			})
		}
	}
	if len(shortages) > 0 {
		return nil, &InsufficientStockError{Shortages: shortages}
	}

	// One order per distinct seller, processed in deterministic order
	groups := make(map[string][]models.CartItem)
	for _, line := range lines {
		groups[line.Product.SellerID] = append(groups[line.Product.SellerID], line)
	}
	sellerIDs := make([]string, 0, len(groups))
	for sellerID := range groups {
		sellerIDs = append(sellerIDs, sellerID)
	}
	sort.Strings(sellerIDs)

	var placed []models.Order
	for _, sellerID := range sellerIDs {
		order, err := placeSellerOrder(db, buyerID, sellerID, groups[sellerID], address, phone, notes)
		if err != nil {
			rollbackOrders(db, placed)
			return nil, err
		}
		placed = append(placed, order)
	}

	// The purchase is final once every order committed; a failed cart clear
	// is logged, never surfaced to the buyer.
	if err := db.Where("user_id = ?", buyerID).Delete(&models.CartItem{}).Error; err != nil {
		log.Printf("⚠️ Failed to clear cart for user %s after checkout: %v", buyerID, err)
	}

	for i := range placed {
		broadcastNewOrder(placed[i])
	}

	return placed, nil
}

// placeSellerOrder commits one seller's share of the cart in a single
// transaction: stock reservation, order row, item snapshots.
func placeSellerOrder(db *gorm.DB, buyerID, sellerID string, lines []models.CartItem, address, phone, notes string) (models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var items []models.OrderItem

		for _, line := range lines {
			// Atomic floor-checked decrement. Zero rows affected means a
			// concurrent checkout took the stock between pre-check and here.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", line.ProductID, line.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				available := 0
				var p models.Product
				if err := tx.Select("quantity").First(&p, line.ProductID).Error; err == nil {
					available = p.Quantity
				}
				return &InsufficientStockError{Shortages: []StockShortage{{
					ProductID: line.ProductID,
					Name:      line.Product.Name,
					Requested: line.Quantity,
					Available: available,
				}}}
			}

			lineTotal := line.Product.DiscountedPrice * float64(line.Quantity)
			total += lineTotal

			// Price snapshot: later edits to the product never touch this row
			items = append(items, models.OrderItem{
				ProductID:   line.ProductID,
				ProductName: line.Product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   line.Product.DiscountedPrice,
				TotalPrice:  lineTotal,
			})
		}

		order = models.Order{
			OrderRef:        generateOrderRef(),
			BuyerID:         buyerID,
			SellerID:        sellerID,
			Items:           items,
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
			DeliveryAddress: address,
			PhoneNumber:     phone,
			Notes:           notes,
			CreatedAt:       time.Now(),
		}

		return tx.Create(&order).Error
	})

	return order, err
}

// rollbackOrders undoes already-committed seller orders after a later group
// failed: stock returned, items and order deleted. Each rollback is retried
// a bounded number of times; an order that still cannot be undone is flagged
// needs_review rather than silently left behind.
func rollbackOrders(db *gorm.DB, orders []models.Order) {
	for i := range orders {
		var lastErr error
		for attempt := 1; attempt <= rollbackAttempts; attempt++ {
			if lastErr = undoOrder(db, &orders[i]); lastErr == nil {
				break
			}
			log.Printf("⚠️ Rollback attempt %d for order %s failed: %v", attempt, orders[i].OrderRef, lastErr)
		}
		if lastErr != nil {
			log.Printf("❌ Could not roll back order %s — flagging for manual review", orders[i].OrderRef)
			if err := db.Model(&models.Order{}).Where("id = ?", orders[i].ID).
				Update("needs_review", true).Error; err != nil {
				log.Printf("❌ Failed to flag order %s for review: %v", orders[i].OrderRef, err)
			}
		}
	}
}

func undoOrder(db *gorm.DB, order *models.Order) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, order.ID).Error
	})
}

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handler --------

// POST /user/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		orders, err := Checkout(db, userID, req)
		if err != nil {
			var stockErr *InsufficientStockError
			switch {
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error(), "shortages": stockErr.Shortages})
			case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrMissingAddress), errors.Is(err, ErrMissingPhone):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"orders":  orders,
		})
	}
}

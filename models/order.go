package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting seller confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // accepted by the seller
	OrderStatusReady     OrderStatus = "ready"     // packed, ready for pickup/delivery
	OrderStatusCompleted OrderStatus = "completed" // handed over to the buyer
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before completion
)

// CanTransitionTo reports whether moving from s to next is allowed.
// Forward only: pending → confirmed → ready → completed, with cancellation
// possible from any non-terminal state. completed and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed || next == OrderStatusCancelled
	case OrderStatusConfirmed:
		return next == OrderStatusReady || next == OrderStatusCancelled
	case OrderStatusReady:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	default:
		return false
	}
}

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	BuyerID         string      `gorm:"index;not null" json:"buyer_id"`
	Buyer           Profile     `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	SellerID        string      `gorm:"index;not null" json:"seller_id"`
	Seller          Profile     `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	DeliveryAddress string      `gorm:"not null" json:"delivery_address"`
	PhoneNumber     string      `gorm:"not null" json:"phone_number"`
	PickupTime      *time.Time  `json:"pickup_time,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	// NeedsReview marks an order whose compensating rollback failed mid-checkout;
	// it must be reconciled manually before fulfillment.
	NeedsReview bool      `gorm:"default:false" json:"needs_review"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderItem snapshots a cart line at purchase time. UnitPrice is the product's
// discounted price at that moment; later price edits never touch placed orders.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index;not null" json:"order_id"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	TotalPrice  float64 `gorm:"not null" json:"total_price"`
}

package orderControllers

import (
	"fmt"
	"testing"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// placeTestOrder runs a real checkout so fulfillment tests start from the
// same state production orders do.
func placeTestOrder(t *testing.T, db *gorm.DB, buyerID string, productID uint, qty int) models.Order {
	t.Helper()
	addToCart(t, db, buyerID, productID, qty)
	orders, err := Checkout(db, buyerID, validCheckout())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	return orders[0]
}

func TestFulfillmentHappyPath(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, "seller-1", models.RoleFBO)
	seedProfile(t, db, "buyer-1", models.RoleConsumer)
	product := seedProduct(t, db, "seller-1", "Bread", 900, 5)
	order := placeTestOrder(t, db, "buyer-1", product.ID, 2)

	orderID := fmt.Sprint(order.ID)

	for _, next := range []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusReady,
		models.OrderStatusCompleted,
	} {
		updated, err := TransitionOrderStatus(db, orderID, "seller-1", next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	// Completion does not touch stock; it was reserved at checkout
	var p models.Product
	require.NoError(t, db.First(&p, product.ID).Error)
	assert.Equal(t, 3, p.Quantity)

	// Terminal state: nothing moves out of completed
	_, err := TransitionOrderStatus(db, orderID, "seller-1", models.OrderStatusCancelled)
	var transitionErr *InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

func TestTransitionRejectsSkippingStates(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, "seller-1", models.RoleFBO)
	seedProfile(t, db, "buyer-1", models.RoleConsumer)
	product := seedProduct(t, db, "seller-1", "Bread", 900, 5)
	order := placeTestOrder(t, db, "buyer-1", product.ID, 1)

	_, err := TransitionOrderStatus(db, fmt.Sprint(order.ID), "seller-1", models.OrderStatusCompleted)
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, models.OrderStatusPending, transitionErr.From)

	var o models.Order
	require.NoError(t, db.First(&o, order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, o.Status)
}

func TestCancellationReturnsStock(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, "seller-1", models.RoleFBO)
	seedProfile(t, db, "buyer-1", models.RoleConsumer)
	product := seedProduct(t, db, "seller-1", "Bread", 900, 5)
	order := placeTestOrder(t, db, "buyer-1", product.ID, 2)

	var p models.Product
	require.NoError(t, db.First(&p, product.ID).Error)
	require.Equal(t, 3, p.Quantity)

	updated, err := TransitionOrderStatus(db, fmt.Sprint(order.ID), "seller-1", models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, updated.Status)

	require.NoError(t, db.First(&p, product.ID).Error)
	assert.Equal(t, 5, p.Quantity)

	// Cancelled is terminal too
	_, err = TransitionOrderStatus(db, fmt.Sprint(order.ID), "seller-1", models.OrderStatusConfirmed)
	var transitionErr *InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

func TestTransitionEnforcesSellerOwnership(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, "seller-1", models.RoleFBO)
	seedProfile(t, db, "seller-2", models.RoleFBO)
	seedProfile(t, db, "buyer-1", models.RoleConsumer)
	product := seedProduct(t, db, "seller-1", "Bread", 900, 5)
	order := placeTestOrder(t, db, "buyer-1", product.ID, 1)

	_, err := TransitionOrderStatus(db, fmt.Sprint(order.ID), "seller-2", models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, ErrNotOrderSeller)
}

// A competing status write landing between the read and the write must not
// double-apply side effects like restocking.
func TestTransitionDetectsConcurrentStatusChange(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, "seller-1", models.RoleFBO)
	seedProfile(t, db, "buyer-1", models.RoleConsumer)
	product := seedProduct(t, db, "seller-1", "Bread", 900, 5)
	order := placeTestOrder(t, db, "buyer-1", product.ID, 2)

	// Flip the status right after the order is loaded, on the same
	// connection so the interleaving is deterministic.
	fired := false
	require.NoError(t, db.Callback().Query().After("gorm:query").
		Register("competing_status_write", func(d *gorm.DB) {
			if fired {
				return
			}
			if _, ok := d.Statement.Dest.(*models.Order); !ok {
				return
			}
			fired = true
			d.Session(&gorm.Session{NewDB: true}).
				Model(&models.Order{}).
				Where("id = ?", order.ID).
				Update("status", models.OrderStatusConfirmed)
		}))

	_, err := TransitionOrderStatus(db, fmt.Sprint(order.ID), "seller-1", models.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrOrderConflict)

	// The restock rolled back with the rejected transaction
	var p models.Product
	require.NoError(t, db.First(&p, product.ID).Error)
	assert.Equal(t, 3, p.Quantity)
}

func TestTransitionBlockedWhileUnderReview(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, "seller-1", models.RoleFBO)
	seedProfile(t, db, "buyer-1", models.RoleConsumer)
	product := seedProduct(t, db, "seller-1", "Bread", 900, 5)
	order := placeTestOrder(t, db, "buyer-1", product.ID, 1)

	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("needs_review", true).Error)

	_, err := TransitionOrderStatus(db, fmt.Sprint(order.ID), "seller-1", models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, ErrOrderNeedsReview)
}

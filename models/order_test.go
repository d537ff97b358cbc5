package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusReady, OrderStatusCancelled},
		OrderStatusReady:     {OrderStatusCompleted, OrderStatusCancelled},
		OrderStatusCompleted: {},
		OrderStatusCancelled: {},
	}

	all := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled,
	}

	for from, nexts := range allowed {
		ok := map[OrderStatus]bool{}
		for _, n := range nexts {
			ok[n] = true
		}
		for _, to := range all {
			if got := from.CanTransitionTo(to); got != ok[to] {
				t.Errorf("CanTransitionTo(%s → %s) = %v, want %v", from, to, got, ok[to])
			}
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{"bakery", "vegetables", "dairy", "meat", "fruits", "beverages", "other"} {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"", "Bakery", "electronics", "food"} {
		if ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = true, want false", c)
		}
	}
}

package statemachine

import (
	"errors"

	"ding-dong-api/models"
)

// OrderState is derived from the order's flags rather than stored.
type OrderState string

const (
	StateOpen      OrderState = "OPEN"
	StatePaid      OrderState = "PAID"
	StateDelivered OrderState = "DELIVERED"
)

// ErrOrderDelivered is returned for any update attempt on a delivered order.
var ErrOrderDelivered = errors.New("order has been delivered")

// StateOf maps an order's flags onto its lifecycle state.
func StateOf(o *models.Order) OrderState {
	switch {
	case o.Delivered:
		return StateDelivered
	case o.Paid:
		return StatePaid
	default:
		return StateOpen
	}
}

// CanUpdate reports whether the order still accepts field updates.
// DELIVERED is the single terminal state: once an order is marked
// delivered it is immutable, including its paid flag and driver.
func CanUpdate(o *models.Order) error {
	if StateOf(o) == StateDelivered {
		return ErrOrderDelivered
	}
	return nil
}

// Terminal reports whether a state accepts no further transitions.
func Terminal(s OrderState) bool {
	return s == StateDelivered
}

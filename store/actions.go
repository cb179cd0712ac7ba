package store

import (
	"time"

	"kobit-api/models"
)

// Action is a closed union of store mutations. Each variant carries only
// the fields its transition needs; Reduce matches exhaustively.
type Action interface {
	actionType() string
}

type AddOrder struct {
	Order models.Order
}

// OrderPatch is a partial order update; nil fields are left untouched
type OrderPatch struct {
	Status            *models.OrderStatus
	PaymentStatus     *models.PaymentStatus
	TransferReference *string
	TransferDate      *time.Time
	TransferAmount    *int
	CustomerNotes     *string
	// ChangedBy/Note annotate the audit trail entry when Status is set
	ChangedBy string
	Note      string
}

type UpdateOrder struct {
	ID    string
	Patch OrderPatch
}

type AddPaymentConfirmation struct {
	Confirmation models.PaymentConfirmation
}

// PaymentPatch is a partial confirmation update
type PaymentPatch struct {
	Status     *models.PaymentStatus
	ReviewedAt *time.Time
	ReviewedBy *string
}

type UpdatePaymentConfirmation struct {
	ID    string
	Patch PaymentPatch
}

type AddCustomer struct {
	Customer models.Customer
}

// CustomerPatch is a partial customer update
type CustomerPatch struct {
	Name          *string
	Email         *string
	Phone         *string
	Avatar        *string
	TotalOrders   *int
	TotalSpent    *int
	LastOrderDate *time.Time
}

type UpdateCustomer struct {
	ID    string
	Patch CustomerPatch
}

type AddMenuItem struct {
	Item models.MenuItem
}

type UpdateMenuItem struct {
	ID   string
	Item models.MenuItem // full replacement, catalog is the source of truth
}

type DeleteMenuItem struct {
	ID string
}

type UpdateStats struct{}

func (AddOrder) actionType() string                  { return "ADD_ORDER" }
func (UpdateOrder) actionType() string               { return "UPDATE_ORDER" }
func (AddPaymentConfirmation) actionType() string    { return "ADD_PAYMENT_CONFIRMATION" }
func (UpdatePaymentConfirmation) actionType() string { return "UPDATE_PAYMENT_CONFIRMATION" }
func (AddCustomer) actionType() string               { return "ADD_CUSTOMER" }
func (UpdateCustomer) actionType() string            { return "UPDATE_CUSTOMER" }
func (AddMenuItem) actionType() string               { return "ADD_MENU_ITEM" }
func (UpdateMenuItem) actionType() string            { return "UPDATE_MENU_ITEM" }
func (DeleteMenuItem) actionType() string            { return "DELETE_MENU_ITEM" }
func (UpdateStats) actionType() string               { return "UPDATE_STATS" }

// ActionType exposes the action's wire name for logging and events
func ActionType(a Action) string {
	if a == nil {
		return ""
	}
	return a.actionType()
}

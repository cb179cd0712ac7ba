package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPendingPayment   OrderStatus = "pending_payment"
	StatusPaymentConfirmed OrderStatus = "payment_confirmed"
	StatusPreparing        OrderStatus = "preparing"
	StatusReady            OrderStatus = "ready"
	StatusDelivered        OrderStatus = "delivered"
	StatusCancelled        OrderStatus = "cancelled"
)

// PaymentStatus tracks the out-of-band bank transfer review outcome
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentRejected  PaymentStatus = "rejected"
)

// PaymentMethod — bank transfer is the only live method
type PaymentMethod string

const (
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// OrderItem is a snapshot of a menu item at order time. Name and price are
// captured when the order is created and never re-read from the catalog.
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

// StatusChange is one entry in an order's audit trail
type StatusChange struct {
	From      OrderStatus `json:"from_status"`
	To        OrderStatus `json:"to_status"`
	ChangedBy string      `json:"changed_by"`
	Note      string      `json:"note,omitempty"`
	ChangedAt time.Time   `json:"changed_at"`
}

type Order struct {
	ID                string         `json:"id"`
	CustomerID        string         `json:"customer_id"`
	Customer          Customer       `json:"customer"`
	Items             []OrderItem    `json:"items"`
	Subtotal          int            `json:"subtotal"`
	DeliveryFee       int            `json:"delivery_fee"`
	ServiceFee        int            `json:"service_fee"`
	Tax               int            `json:"tax"`
	Total             int            `json:"total"` // fixed at creation, never recomputed
	Status            OrderStatus    `json:"status"`
	PaymentMethod     PaymentMethod  `json:"payment_method"`
	PaymentStatus     PaymentStatus  `json:"payment_status"`
	TransferReference string         `json:"transfer_reference,omitempty"`
	TransferDate      *time.Time     `json:"transfer_date,omitempty"`
	TransferAmount    int            `json:"transfer_amount,omitempty"`
	CustomerNotes     string         `json:"customer_notes,omitempty"`
	StatusHistory     []StatusChange `json:"status_history,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// IsTerminal reports whether the order can no longer transition
func (o Order) IsTerminal() bool {
	return o.Status == StatusDelivered || o.Status == StatusCancelled
}

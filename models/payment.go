package models

import "time"

// PaymentConfirmation is a customer's claim of a completed bank transfer,
// linked 1:1 to an order and subject to admin review. Once status leaves
// "pending" only the audit fields change.
type PaymentConfirmation struct {
	ID                string        `json:"id"`
	OrderID           string        `json:"order_id"`
	CustomerID        string        `json:"customer_id"`
	Amount            int           `json:"amount"`
	TransferReference string        `json:"transfer_reference"`
	TransferDate      time.Time     `json:"transfer_date"`
	TransferAmount    int           `json:"transfer_amount"`
	CustomerNotes     string        `json:"customer_notes,omitempty"`
	Status            PaymentStatus `json:"status"`
	SubmittedAt       time.Time     `json:"submitted_at"`
	ReviewedAt        *time.Time    `json:"reviewed_at,omitempty"`
	ReviewedBy        string        `json:"reviewed_by,omitempty"`
}

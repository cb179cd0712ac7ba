package models

import "time"

// Customer is the storefront-side customer record. TotalOrders and
// TotalSpent track confirmed orders and are bumped when a payment
// confirmation is accepted.
type Customer struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Avatar        string     `json:"avatar,omitempty"`
	TotalOrders   int        `json:"total_orders"`
	TotalSpent    int        `json:"total_spent"`
	JoinDate      time.Time  `json:"join_date"`
	LastOrderDate *time.Time `json:"last_order_date,omitempty"`
}

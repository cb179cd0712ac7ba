package store

import (
	"time"

	"kobit-api/models"
)

// Stats are derived aggregates recomputed from orders and customers
type Stats struct {
	TotalRevenue  int `json:"total_revenue"` // confirmed orders only
	TotalOrders   int `json:"total_orders"`  // all orders regardless of payment state
	NewCustomers  int `json:"new_customers"` // joined within the last 30 days
	AvgOrderValue int `json:"avg_order_value"`
}

// AppState is the root aggregate. Sequences are most-recent-first.
type AppState struct {
	Orders               []models.Order               `json:"orders"`
	Customers            []models.Customer            `json:"customers"`
	PaymentConfirmations []models.PaymentConfirmation `json:"payment_confirmations"`
	MenuItems            []models.MenuItem            `json:"menu_items"`
	Stats                Stats                        `json:"stats"`
}

// clone copies the state's slices so reducer output never aliases input.
// Element structs are treated as immutable values.
func (s AppState) clone() AppState {
	out := s
	out.Orders = append([]models.Order(nil), s.Orders...)
	out.Customers = append([]models.Customer(nil), s.Customers...)
	out.PaymentConfirmations = append([]models.PaymentConfirmation(nil), s.PaymentConfirmations...)
	out.MenuItems = append([]models.MenuItem(nil), s.MenuItems...)
	return out
}

// recomputeStats applies the derived-stats rule against now
func recomputeStats(s AppState, now time.Time) Stats {
	totalRevenue := 0
	for _, o := range s.Orders {
		if o.PaymentStatus == models.PaymentConfirmed {
			totalRevenue += o.Total
		}
	}
	totalOrders := len(s.Orders)
	cutoff := now.Add(-30 * 24 * time.Hour)
	newCustomers := 0
	for _, c := range s.Customers {
		if c.JoinDate.After(cutoff) {
			newCustomers++
		}
	}
	avg := 0
	if totalOrders > 0 {
		avg = totalRevenue / totalOrders
	}
	return Stats{
		TotalRevenue:  totalRevenue,
		TotalOrders:   totalOrders,
		NewCustomers:  newCustomers,
		AvgOrderValue: avg,
	}
}

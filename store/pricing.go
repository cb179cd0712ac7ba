package store

import (
	"math"
	"time"

	"kobit-api/cart"
	"kobit-api/models"
)

// Pricing is the checkout fee breakdown. Fees are fixed into the order at
// creation and never recomputed, even if catalog prices change later.
type Pricing struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"delivery_fee"`
	ServiceFee  int `json:"service_fee"`
	Tax         int `json:"tax"`
	Total       int `json:"total"`
}

const baseDeliveryFee = 500

// ComputePricing applies the storefront fee policy: flat delivery fee,
// 5% service fee, 7.5% VAT.
func ComputePricing(subtotal int) Pricing {
	serviceFee := int(math.Round(float64(subtotal) * 0.05))
	tax := int(math.Round(float64(subtotal) * 0.075))
	return Pricing{
		Subtotal:    subtotal,
		DeliveryFee: baseDeliveryFee,
		ServiceFee:  serviceFee,
		Tax:         tax,
		Total:       subtotal + baseDeliveryFee + serviceFee + tax,
	}
}

// NewOrder builds an order from a cart snapshot. Item names and prices are
// captured here; the order is immune to later catalog changes.
func NewOrder(id string, customer models.Customer, items []cart.Item, pricing Pricing, notes string, now time.Time) models.Order {
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ID:       GenerateItemID(item.ID),
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Category: item.Restaurant,
		})
	}
	return models.Order{
		ID:            id,
		CustomerID:    customer.ID,
		Customer:      customer,
		Items:         orderItems,
		Subtotal:      pricing.Subtotal,
		DeliveryFee:   pricing.DeliveryFee,
		ServiceFee:    pricing.ServiceFee,
		Tax:           pricing.Tax,
		Total:         pricing.Total,
		Status:        models.StatusPendingPayment,
		PaymentMethod: models.MethodBankTransfer,
		PaymentStatus: models.PaymentPending,
		CustomerNotes: notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

package store

import (
	"time"

	"kobit-api/models"
)

func seedTime(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		t, _ = time.Parse("2006-01-02", value)
	}
	return t
}

func timePtr(t time.Time) *time.Time { return &t }

// Seed returns the initial application state: a couple of orders in
// different lifecycle stages, their customers, one pending bank-transfer
// confirmation, and the menu snapshot, so the admin console has content
// on a fresh boot.
func Seed() AppState {
	sophia := models.Customer{
		ID:            "CUST-001",
		Name:          "Sophia Anderson",
		Email:         "sophia.anderson@email.com",
		Phone:         "08012345678",
		Avatar:        "/placeholder.svg?height=32&width=32",
		TotalOrders:   5,
		TotalSpent:    125000,
		JoinDate:      seedTime("2024-01-15"),
		LastOrderDate: timePtr(seedTime("2024-01-25")),
	}
	james := models.Customer{
		ID:            "CUST-002",
		Name:          "James Wilson",
		Email:         "james.wilson@email.com",
		Phone:         "08087654321",
		Avatar:        "/placeholder.svg?height=32&width=32",
		TotalOrders:   3,
		TotalSpent:    87000,
		JoinDate:      seedTime("2024-01-20"),
		LastOrderDate: timePtr(seedTime("2024-01-25")),
	}

	return AppState{
		Orders: []models.Order{
			{
				ID:         "ORD-001",
				CustomerID: sophia.ID,
				Customer:   sophia,
				Items: []models.OrderItem{
					{ID: "ITEM-001", Name: "Jollof Rice", Price: 15000, Quantity: 2, Category: "Main Course"},
					{ID: "ITEM-002", Name: "Grilled Chicken", Price: 12500, Quantity: 1, Category: "Protein"},
				},
				Subtotal:          42500,
				Total:             42500,
				Status:            models.StatusPaymentConfirmed,
				PaymentMethod:     models.MethodBankTransfer,
				PaymentStatus:     models.PaymentConfirmed,
				TransferReference: "FBN240125001234",
				TransferDate:      timePtr(seedTime("2024-01-25T14:30:00")),
				TransferAmount:    42500,
				CustomerNotes:     "Transfer made via mobile banking",
				CreatedAt:         seedTime("2024-01-25T14:00:00"),
				UpdatedAt:         seedTime("2024-01-25T14:45:00"),
			},
			{
				ID:         "ORD-002",
				CustomerID: james.ID,
				Customer:   james,
				Items: []models.OrderItem{
					{ID: "ITEM-003", Name: "Fried Rice", Price: 18000, Quantity: 1, Category: "Main Course"},
					{ID: "ITEM-004", Name: "Fish Pepper Soup", Price: 10990, Quantity: 1, Category: "Soup"},
				},
				Subtotal:      28990,
				Total:         28990,
				Status:        models.StatusPendingPayment,
				PaymentMethod: models.MethodBankTransfer,
				PaymentStatus: models.PaymentPending,
				CreatedAt:     seedTime("2024-01-25T13:00:00"),
				UpdatedAt:     seedTime("2024-01-25T13:00:00"),
			},
		},
		Customers: []models.Customer{sophia, james},
		PaymentConfirmations: []models.PaymentConfirmation{
			{
				ID:                "PAY-001",
				OrderID:           "ORD-002",
				CustomerID:        james.ID,
				Amount:            28990,
				TransferReference: "GTB240125002345",
				TransferDate:      seedTime("2024-01-25T13:15:00"),
				TransferAmount:    28990,
				CustomerNotes:     "Quick transfer via USSD",
				Status:            models.PaymentPending,
				SubmittedAt:       seedTime("2024-01-25T13:30:00"),
			},
		},
		MenuItems: SeedMenuItems(),
		Stats: Stats{
			TotalRevenue:  212000,
			TotalOrders:   8,
			NewCustomers:  2,
			AvgOrderValue: 26500,
		},
	}
}

// SeedMenuItems is the menu snapshot shared between the store and the
// catalog seeding at boot.
func SeedMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:              "ITEM-001",
			Name:            "Jollof Rice",
			Description:     "Delicious Nigerian jollof rice with vegetables",
			Price:           15000,
			Category:        "Main Course",
			Image:           "/placeholder.svg?height=200&width=200",
			Available:       true,
			PreparationTime: 25,
			Ingredients:     "Rice, Tomatoes, Onions, Spices",
			Sold:            342,
			Revenue:         5130000,
			Growth:          12.5,
		},
		{
			ID:              "ITEM-002",
			Name:            "Grilled Chicken",
			Description:     "Perfectly grilled chicken with special sauce",
			Price:           12500,
			Category:        "Protein",
			Image:           "/placeholder.svg?height=200&width=200",
			Available:       true,
			PreparationTime: 20,
			Ingredients:     "Chicken, Spices, Sauce",
			Sold:            276,
			Revenue:         3450000,
			Growth:          8.3,
		},
		{
			ID:              "ITEM-003",
			Name:            "Fried Rice",
			Description:     "Tasty fried rice with mixed vegetables",
			Price:           18000,
			Category:        "Main Course",
			Image:           "/placeholder.svg?height=200&width=200",
			Available:       true,
			PreparationTime: 30,
			Ingredients:     "Rice, Vegetables, Soy Sauce, Spices",
			Sold:            189,
			Revenue:         3402000,
			Growth:          5.7,
		},
		{
			ID:              "ITEM-004",
			Name:            "Fish Pepper Soup",
			Description:     "Spicy fish pepper soup with local spices",
			Price:           10990,
			Category:        "Soup",
			Image:           "/placeholder.svg?height=200&width=200",
			Available:       true,
			PreparationTime: 15,
			Ingredients:     "Fish, Pepper, Local Spices",
			Sold:            156,
			Revenue:         1714440,
			Growth:          15.2,
		},
	}
}

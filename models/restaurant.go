package models

import (
	"strings"
	"time"
)

type Restaurant struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Cuisine      string     `json:"cuisine"`
	Address      string     `json:"address"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	IsOpen       bool       `json:"is_open" gorm:"default:true"`
	Rating       float64    `json:"rating" gorm:"default:0"`
	DeliveryTime string     `json:"delivery_time"` // e.g. "25-35 mins"
	DeliveryFee  int        `json:"delivery_fee"`
	MinimumOrder int        `json:"minimum_order"`
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MenuItem is the catalog entity. Sold/Revenue/Growth are sales metrics
// carried alongside the item for the admin dashboard.
type MenuItem struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	RestaurantID    uint      `json:"restaurant_id"`
	Name            string    `json:"name" gorm:"not null"`
	Description     string    `json:"description"`
	Price           int       `json:"price" gorm:"not null"` // integer currency units (kobo-denominated naira)
	Category        string    `json:"category"`
	Image           string    `json:"image"`
	Available       bool      `json:"available" gorm:"default:true"`
	PreparationTime int       `json:"preparation_time"` // minutes
	Ingredients     string    `json:"ingredients"`      // comma-separated in the catalog table
	Sold            int       `json:"sold"`
	Revenue         int       `json:"revenue"`
	Growth          float64   `json:"growth"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IngredientList splits the stored comma-separated ingredients
func (m MenuItem) IngredientList() []string {
	if m.Ingredients == "" {
		return nil
	}
	parts := strings.Split(m.Ingredients, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

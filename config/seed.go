package config

import (
	"log"

	"kobit-api/models"
)

// SeedCatalog loads the starter restaurants and menu items into an empty
// database so browsing works on first boot.
func SeedCatalog(menuItems []models.MenuItem) {
	var count int64
	DB.Model(&models.Restaurant{}).Count(&count)
	if count > 0 {
		return
	}

	restaurants := []models.Restaurant{
		{
			Name:         "Mama Put Kitchen",
			Description:  "Authentic Nigerian home-style cooking with the best jollof rice in Lagos",
			Cuisine:      "Nigerian",
			Address:      "123 Allen Avenue, Ikeja, Lagos",
			Image:        "/placeholder.svg?height=200&width=300",
			Rating:       4.8,
			DeliveryTime: "25-35 mins",
			DeliveryFee:  500,
			MinimumOrder: 2000,
			IsOpen:       true,
		},
		{
			Name:         "Jollof Palace",
			Description:  "The home of the best jollof rice and grilled chicken in Nigeria",
			Cuisine:      "Nigerian",
			Address:      "45 Victoria Island, Lagos Island, Lagos",
			Image:        "/placeholder.svg?height=200&width=300",
			Rating:       4.6,
			DeliveryTime: "30-40 mins",
			DeliveryFee:  600,
			MinimumOrder: 1500,
			IsOpen:       true,
		},
	}
	for i := range restaurants {
		if err := DB.Create(&restaurants[i]).Error; err != nil {
			log.Printf("Failed to seed restaurant %q: %v", restaurants[i].Name, err)
		}
	}

	for i := range menuItems {
		item := menuItems[i]
		item.RestaurantID = restaurants[0].ID
		if err := DB.Create(&item).Error; err != nil {
			log.Printf("Failed to seed menu item %q: %v", item.Name, err)
		}
	}

	log.Println("✅ Catalog seeded with starter restaurants and menu")
}

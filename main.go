package main

import (
	"log"
	"net/http"
	"os"

	"kobit-api/cart"
	"kobit-api/config"
	"kobit-api/events"
	"kobit-api/handlers"
	"kobit-api/routes"
	"kobit-api/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database and seed the catalog
	config.InitDB()
	config.SeedCatalog(store.SeedMenuItems())

	// In-memory aggregate store, seeded so the admin console has content
	appStore := store.New(store.Seed())

	// Cart persistence: redis when configured, file store otherwise
	var carts cart.Persistence
	if rdb := config.NewRedisClient(); rdb != nil {
		carts = cart.NewRedisStore(rdb)
		log.Println("✅ Cart persistence: redis")
	} else {
		fs, err := cart.NewFileStore(config.GetEnv("CART_DIR", "carts"))
		if err != nil {
			log.Fatal("Failed to init cart store:", err)
		}
		carts = fs
		log.Println("✅ Cart persistence: file store")
	}

	// Lifecycle events: kafka when brokers are configured
	var publisher events.Publisher = events.Nop{}
	if brokers := config.KafkaBrokers(); brokers != nil {
		publisher = events.NewKafka(brokers, config.GetEnv("KAFKA_TOPIC", "kobit-orders"))
		log.Println("✅ Event publishing: kafka")
	}
	defer publisher.Close()

	h := &handlers.Handler{
		Store:  appStore,
		Carts:  carts,
		Events: publisher,
		Hub:    handlers.NewHub(),
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Kobit Food Delivery API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍔 Welcome to the Kobit Food Delivery API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"customer", "admin"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

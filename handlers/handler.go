package handlers

import (
	"fmt"
	"os"

	"kobit-api/cart"
	"kobit-api/events"
	"kobit-api/store"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "handlers").Logger()

// Handler carries the injected application dependencies. The aggregate
// store is passed explicitly — there is no ambient singleton for it.
type Handler struct {
	Store  *store.Store
	Carts  cart.Persistence
	Events events.Publisher
	Hub    *Hub
}

// cartKey derives the persistence key for a user's cart
func cartKey(userID uint) string {
	return fmt.Sprintf("user-%d", userID)
}

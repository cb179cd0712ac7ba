package cart

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "cart").Logger()

// Item is one line in a customer's pre-checkout cart
type Item struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Price      int    `json:"price"` // integer currency units
	Quantity   int    `json:"quantity"`
	Image      string `json:"image"`
	Restaurant string `json:"restaurant"`
}

// Notifier receives user-facing cart notifications ("item added" etc.)
type Notifier interface {
	Notify(title, description string)
}

type logNotifier struct{}

func (logNotifier) Notify(title, description string) {
	logger.Info().Str("title", title).Msg(description)
}

// Cart holds a customer's selected items. Every mutation persists the full
// snapshot through the injected Persistence before returning.
type Cart struct {
	key    string
	items  []Item
	store  Persistence
	notify Notifier
}

// Load builds a cart from the persisted snapshot under key. A load or
// parse failure is logged and treated as an empty cart — fail open.
func Load(ctx context.Context, store Persistence, key string) *Cart {
	c := &Cart{key: key, store: store, notify: logNotifier{}}
	items, err := store.Load(ctx, key)
	if err != nil {
		logger.Error().Err(err).Str("cart", key).Msg("Failed to load saved cart, starting empty")
		return c
	}
	c.items = items
	return c
}

// SetNotifier replaces the default log-based notifier
func (c *Cart) SetNotifier(n Notifier) {
	if n != nil {
		c.notify = n
	}
}

// AddItem appends the item with quantity 1, or increments the quantity if
// an item with the same id is already present.
func (c *Cart) AddItem(ctx context.Context, item Item) error {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			c.notify.Notify("Item quantity updated",
				fmt.Sprintf("%s quantity increased to %d", item.Name, c.items[i].Quantity))
			return c.save(ctx)
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
	c.notify.Notify("Item added to cart", item.Name+" has been added to your cart")
	return c.save(ctx)
}

// UpdateQuantity replaces the item's quantity in place. Quantities below 1
// are ignored, preserving the cart unchanged.
func (c *Cart) UpdateQuantity(ctx context.Context, id, quantity int) error {
	if quantity < 1 {
		return nil
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
		}
	}
	return c.save(ctx)
}

// RemoveItem removes the matching item. Unknown ids are silently ignored.
func (c *Cart) RemoveItem(ctx context.Context, id int) error {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID == id {
			c.notify.Notify("Item removed", item.Name+" has been removed from your cart")
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	return c.save(ctx)
}

// Clear empties the cart
func (c *Cart) Clear(ctx context.Context) error {
	c.items = nil
	c.notify.Notify("Cart cleared", "All items have been removed from your cart")
	return c.save(ctx)
}

// Items returns a copy of the cart contents
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the sum of quantities, recomputed on every call
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is Σ price × quantity, recomputed on every call
func (c *Cart) Subtotal() int {
	sum := 0
	for _, item := range c.items {
		sum += item.Price * item.Quantity
	}
	return sum
}

func (c *Cart) save(ctx context.Context) error {
	if err := c.store.Save(ctx, c.key, c.items); err != nil {
		logger.Error().Err(err).Str("cart", c.key).Msg("Failed to persist cart snapshot")
		return err
	}
	return nil
}

package handlers

import (
	"net/http"
	"strconv"

	"kobit-api/cart"
	"kobit-api/middleware"

	"github.com/gin-gonic/gin"
)

// loadCart builds the caller's cart from the injected persistence
func (h *Handler) loadCart(c *gin.Context) *cart.Cart {
	return cart.Load(c.Request.Context(), h.Carts, cartKey(middleware.GetUserID(c)))
}

func cartResponse(ct *cart.Cart) gin.H {
	return gin.H{
		"items":      ct.Items(),
		"item_count": ct.ItemCount(),
		"subtotal":   ct.Subtotal(),
	}
}

// GetCart returns the caller's cart with derived totals
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(h.loadCart(c)))
}

type AddCartItemRequest struct {
	ID         int    `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Price      int    `json:"price" binding:"required,gt=0"`
	Image      string `json:"image"`
	Restaurant string `json:"restaurant"`
}

// AddCartItem adds an item, or bumps its quantity when already present
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct := h.loadCart(c)
	err := ct.AddItem(c.Request.Context(), cart.Item{
		ID:         req.ID,
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
		Restaurant: req.Restaurant,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(ct))
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem replaces an item's quantity. Quantities below 1 leave the
// cart unchanged.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct := h.loadCart(c)
	if err := ct.UpdateQuantity(c.Request.Context(), id, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(ct))
}

// RemoveCartItem deletes an item from the cart; unknown ids are ignored
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	ct := h.loadCart(c)
	if err := ct.RemoveItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(ct))
}

// ClearCart empties the caller's cart
func (h *Handler) ClearCart(c *gin.Context) {
	ct := h.loadCart(c)
	if err := ct.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

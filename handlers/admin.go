package handlers

import (
	"net/http"

	"kobit-api/config"
	"kobit-api/events"
	"kobit-api/middleware"
	"kobit-api/models"
	"kobit-api/statemachine"
	"kobit-api/store"

	"github.com/gin-gonic/gin"
)

// AdminGetAllOrders returns all orders with a status summary — admin only
func (h *Handler) AdminGetAllOrders(c *gin.Context) {
	state := h.Store.State()

	status := c.Query("status")
	customerID := c.Query("customer_id")

	var orders []models.Order
	for _, o := range state.Orders {
		if status != "" && string(o.Status) != status {
			continue
		}
		if customerID != "" && o.CustomerID != customerID {
			continue
		}
		orders = append(orders, o)
	}

	summary := map[string]int{}
	totalRevenue := 0
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.PaymentStatus == models.PaymentConfirmed {
			totalRevenue += o.Total
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// AdminUpdateOrderStatus moves an order through the lifecycle
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	order, ok := h.Store.OrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, "admin"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	h.Store.Dispatch(store.UpdateOrder{
		ID: order.ID,
		Patch: store.OrderPatch{
			Status:    &req.Status,
			ChangedBy: middleware.GetEmail(c),
			Note:      req.Note,
		},
	})

	h.Events.Publish(c.Request.Context(), events.Event{
		Type:    events.OrderStatusChanged,
		OrderID: order.ID,
		Detail:  string(req.Status),
	})
	h.Hub.Broadcast(gin.H{"type": events.OrderStatusChanged, "order_id": order.ID, "status": req.Status})

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(order.Status),
		"current_status":  string(req.Status),
	})
}

// AdminGetPayments serves the review queue: filter by status tab, search by
// customer name, order id, or transfer reference.
func (h *Handler) AdminGetPayments(c *gin.Context) {
	status := models.PaymentStatus(c.Query("status"))
	term := c.Query("q")

	confirmations := h.Store.SearchConfirmations(status, term)

	counts := gin.H{
		"pending":   len(h.Store.SearchConfirmations(models.PaymentPending, "")),
		"confirmed": len(h.Store.SearchConfirmations(models.PaymentConfirmed, "")),
		"rejected":  len(h.Store.SearchConfirmations(models.PaymentRejected, "")),
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":        counts,
		"count":         len(confirmations),
		"confirmations": confirmations,
	})
}

type ReviewPaymentRequest struct {
	Decision string `json:"decision" binding:"required,oneof=confirm reject"`
	Note     string `json:"note"`
}

// AdminReviewPayment settles a pending confirmation. Confirming cascades
// to the linked order inside the same dispatch; rejecting leaves the order
// untouched for manual follow-up.
func (h *Handler) AdminReviewPayment(c *gin.Context) {
	confirmation, ok := h.Store.ConfirmationByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment confirmation not found"})
		return
	}
	if confirmation.Status != models.PaymentPending {
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Confirmation already reviewed",
			"status": confirmation.Status,
		})
		return
	}

	var req ReviewPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.PaymentConfirmed
	if req.Decision == "reject" {
		status = models.PaymentRejected
	}
	now := h.Store.Now()
	reviewer := middleware.GetEmail(c)

	h.Store.Dispatch(store.UpdatePaymentConfirmation{
		ID: confirmation.ID,
		Patch: store.PaymentPatch{
			Status:     &status,
			ReviewedAt: &now,
			ReviewedBy: &reviewer,
		},
	})

	h.Events.Publish(c.Request.Context(), events.Event{
		Type:       events.PaymentReviewed,
		OrderID:    confirmation.OrderID,
		PaymentID:  confirmation.ID,
		CustomerID: confirmation.CustomerID,
		Detail:     string(status),
		OccurredAt: now,
	})
	h.Hub.Broadcast(gin.H{
		"type":       events.PaymentReviewed,
		"payment_id": confirmation.ID,
		"order_id":   confirmation.OrderID,
		"status":     status,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":    "Payment " + string(status),
		"payment_id": confirmation.ID,
		"order_id":   confirmation.OrderID,
		"status":     status,
	})
}

// AdminGetCustomers returns all customers with their running totals
func (h *Handler) AdminGetCustomers(c *gin.Context) {
	state := h.Store.State()
	c.JSON(http.StatusOK, gin.H{"count": len(state.Customers), "customers": state.Customers})
}

// AdminGetStats returns the derived dashboard stats
func (h *Handler) AdminGetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.Store.State().Stats})
}

// ── Menu management ─────────────────────────────────────────────────────

type MenuItemRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           int     `json:"price" binding:"required,gt=0"`
	Category        string  `json:"category"`
	Image           string  `json:"image"`
	Available       *bool   `json:"available"`
	PreparationTime int     `json:"preparation_time"`
	Ingredients     string  `json:"ingredients"`
	RestaurantID    uint    `json:"restaurant_id"`
	Growth          float64 `json:"growth"`
}

func (r MenuItemRequest) toModel(id string) models.MenuItem {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return models.MenuItem{
		ID:              id,
		RestaurantID:    r.RestaurantID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		Category:        r.Category,
		Image:           r.Image,
		Available:       available,
		PreparationTime: r.PreparationTime,
		Ingredients:     r.Ingredients,
		Growth:          r.Growth,
	}
}

// AdminAddMenuItem creates a catalog item and mirrors it into the store
func (h *Handler) AdminAddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := req.toModel(store.GenerateMenuItemID(h.Store.Now()))
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	h.Store.Dispatch(store.AddMenuItem{Item: item})

	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// AdminUpdateMenuItem updates a catalog item in both the database and the
// store snapshot. Existing orders keep their price snapshots.
func (h *Handler) AdminUpdateMenuItem(c *gin.Context) {
	itemID := c.Param("itemId")

	var existing models.MenuItem
	if err := config.DB.First(&existing, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := req.toModel(itemID)
	item.Sold = existing.Sold
	item.Revenue = existing.Revenue
	item.CreatedAt = existing.CreatedAt
	if item.RestaurantID == 0 {
		item.RestaurantID = existing.RestaurantID
	}
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	h.Store.Dispatch(store.UpdateMenuItem{ID: itemID, Item: item})

	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// AdminDeleteMenuItem removes a catalog item
func (h *Handler) AdminDeleteMenuItem(c *gin.Context) {
	itemID := c.Param("itemId")

	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	config.DB.Delete(&item)
	h.Store.Dispatch(store.DeleteMenuItem{ID: itemID})

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

package handlers

import (
	"net/http"
	"time"

	"kobit-api/events"
	"kobit-api/middleware"
	"kobit-api/models"
	"kobit-api/statemachine"
	"kobit-api/store"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	Notes string `json:"notes"`
}

// Checkout turns the caller's cart into an order in pending_payment,
// snapshotting item names, prices, and fees at this moment. The cart is
// cleared once the order is in the store.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	ct := h.loadCart(c)
	if len(ct.Items()) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	customer, ok := h.Store.CustomerByID(middleware.GetCustomerID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No customer record for your account"})
		return
	}

	now := h.Store.Now()
	pricing := store.ComputePricing(ct.Subtotal())
	order := store.NewOrder(store.GenerateOrderID(now), customer, ct.Items(), pricing, req.Notes, now)

	h.Store.Dispatch(store.AddOrder{Order: order})
	if err := ct.Clear(c.Request.Context()); err != nil {
		logger.Error().Err(err).Str("order", order.ID).Msg("Order placed but cart clear failed")
	}

	h.Events.Publish(c.Request.Context(), events.Event{
		Type:       events.OrderCreated,
		OrderID:    order.ID,
		CustomerID: customer.ID,
		OccurredAt: now,
	})
	h.Hub.Broadcast(gin.H{"type": events.OrderCreated, "order": order})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
		"pricing": pricing,
	})
}

// GetMyOrders returns the caller's orders, most recent first
func (h *Handler) GetMyOrders(c *gin.Context) {
	orders := h.Store.OrdersForCustomer(middleware.GetCustomerID(c))
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order with its audit trail
func (h *Handler) GetOrderDetail(c *gin.Context) {
	order, ok := h.Store.OrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != middleware.GetCustomerID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	elapsed := time.Since(order.CreatedAt).Minutes()
	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"minutes_elapsed": int(elapsed),
	})
}

// CancelOrder cancels the caller's order when the lifecycle allows it
func (h *Handler) CancelOrder(c *gin.Context) {
	order, ok := h.Store.OrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != middleware.GetCustomerID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "customer"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot cancel order",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	cancelled := models.StatusCancelled
	h.Store.Dispatch(store.UpdateOrder{
		ID: order.ID,
		Patch: store.OrderPatch{
			Status:    &cancelled,
			ChangedBy: order.CustomerID,
			Note:      "Order cancelled by customer",
		},
	})

	h.Events.Publish(c.Request.Context(), events.Event{
		Type:    events.OrderStatusChanged,
		OrderID: order.ID,
		Detail:  string(models.StatusCancelled),
	})
	h.Hub.Broadcast(gin.H{"type": events.OrderStatusChanged, "order_id": order.ID, "status": cancelled})

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}

type SubmitConfirmationRequest struct {
	OrderID           string `json:"order_id" binding:"required"`
	Amount            int    `json:"amount" binding:"required,gt=0"`
	TransferReference string `json:"transfer_reference" binding:"required"`
	TransferDate      string `json:"transfer_date" binding:"required"`
	TransferAmount    int    `json:"transfer_amount"`
	Notes             string `json:"notes"`
}

// SubmitPaymentConfirmation records the caller's bank transfer proof for
// admin review. Amount/total mismatches are not rejected here — review is
// the admin's call.
func (h *Handler) SubmitPaymentConfirmation(c *gin.Context) {
	var req SubmitConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transferDate, err := time.Parse(time.RFC3339, req.TransferDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transfer_date must be RFC3339"})
		return
	}

	order, ok := h.Store.OrderByID(req.OrderID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != middleware.GetCustomerID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if req.TransferAmount == 0 {
		req.TransferAmount = req.Amount
	}

	now := h.Store.Now()
	confirmation := models.PaymentConfirmation{
		ID:                store.GeneratePaymentID(now),
		OrderID:           order.ID,
		CustomerID:        order.CustomerID,
		Amount:            req.Amount,
		TransferReference: req.TransferReference,
		TransferDate:      transferDate,
		TransferAmount:    req.TransferAmount,
		CustomerNotes:     req.Notes,
		Status:            models.PaymentPending,
		SubmittedAt:       now,
	}
	h.Store.Dispatch(store.AddPaymentConfirmation{Confirmation: confirmation})

	// Attach the transfer details to the order for the admin view
	h.Store.Dispatch(store.UpdateOrder{
		ID: order.ID,
		Patch: store.OrderPatch{
			TransferReference: &req.TransferReference,
			TransferDate:      &transferDate,
			TransferAmount:    &req.TransferAmount,
		},
	})

	h.Events.Publish(c.Request.Context(), events.Event{
		Type:       events.PaymentSubmitted,
		OrderID:    order.ID,
		PaymentID:  confirmation.ID,
		CustomerID: order.CustomerID,
		OccurredAt: now,
	})
	h.Hub.Broadcast(gin.H{"type": events.PaymentSubmitted, "confirmation": confirmation})

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Payment confirmation submitted for review",
		"confirmation": confirmation,
	})
}

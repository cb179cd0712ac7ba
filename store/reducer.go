package store

import (
	"time"

	"kobit-api/models"
)

// Reduce is the pure transition function: (state, action) → state. It
// never mutates its input and performs no validation beyond id matching —
// updates referencing unknown ids leave the state structurally unchanged.
// Stats are only recomputed by UpdateStats; the Store wrapper dispatches
// that automatically after any action touching orders or customers.
func Reduce(state AppState, action Action, now time.Time) AppState {
	switch a := action.(type) {
	case AddOrder:
		next := state.clone()
		next.Orders = append([]models.Order{a.Order}, next.Orders...)
		return next

	case UpdateOrder:
		next := state.clone()
		for i, o := range next.Orders {
			if o.ID == a.ID {
				next.Orders[i] = applyOrderPatch(o, a.Patch, now)
			}
		}
		return next

	case AddPaymentConfirmation:
		next := state.clone()
		next.PaymentConfirmations = append(
			[]models.PaymentConfirmation{a.Confirmation}, next.PaymentConfirmations...)
		return next

	case UpdatePaymentConfirmation:
		next := state.clone()
		var target *models.PaymentConfirmation
		for i, pc := range next.PaymentConfirmations {
			if pc.ID == a.ID {
				next.PaymentConfirmations[i] = applyPaymentPatch(pc, a.Patch)
				target = &next.PaymentConfirmations[i]
			}
		}
		// Confirming a payment cascades to the linked order. This is a
		// required side effect of the same transition, never a separate step.
		if target != nil && a.Patch.Status != nil && *a.Patch.Status == models.PaymentConfirmed {
			next = cascadeConfirmation(next, *target, now)
		}
		return next

	case AddCustomer:
		next := state.clone()
		next.Customers = append([]models.Customer{a.Customer}, next.Customers...)
		return next

	case UpdateCustomer:
		next := state.clone()
		for i, c := range next.Customers {
			if c.ID == a.ID {
				next.Customers[i] = applyCustomerPatch(c, a.Patch)
			}
		}
		return next

	case AddMenuItem:
		next := state.clone()
		next.MenuItems = append([]models.MenuItem{a.Item}, next.MenuItems...)
		return next

	case UpdateMenuItem:
		next := state.clone()
		for i, m := range next.MenuItems {
			if m.ID == a.ID {
				item := a.Item
				item.ID = a.ID
				next.MenuItems[i] = item
			}
		}
		return next

	case DeleteMenuItem:
		next := state.clone()
		kept := next.MenuItems[:0]
		for _, m := range next.MenuItems {
			if m.ID != a.ID {
				kept = append(kept, m)
			}
		}
		next.MenuItems = kept
		return next

	case UpdateStats:
		next := state.clone()
		next.Stats = recomputeStats(next, now)
		return next
	}
	return state
}

func applyOrderPatch(o models.Order, p OrderPatch, now time.Time) models.Order {
	if p.Status != nil && *p.Status != o.Status {
		o.StatusHistory = append(o.StatusHistory, models.StatusChange{
			From:      o.Status,
			To:        *p.Status,
			ChangedBy: p.ChangedBy,
			Note:      p.Note,
			ChangedAt: now,
		})
		o.Status = *p.Status
	}
	if p.PaymentStatus != nil {
		o.PaymentStatus = *p.PaymentStatus
	}
	if p.TransferReference != nil {
		o.TransferReference = *p.TransferReference
	}
	if p.TransferDate != nil {
		o.TransferDate = p.TransferDate
	}
	if p.TransferAmount != nil {
		o.TransferAmount = *p.TransferAmount
	}
	if p.CustomerNotes != nil {
		o.CustomerNotes = *p.CustomerNotes
	}
	o.UpdatedAt = now
	return o
}

func applyPaymentPatch(pc models.PaymentConfirmation, p PaymentPatch) models.PaymentConfirmation {
	if p.Status != nil {
		pc.Status = *p.Status
	}
	if p.ReviewedAt != nil {
		pc.ReviewedAt = p.ReviewedAt
	}
	if p.ReviewedBy != nil {
		pc.ReviewedBy = *p.ReviewedBy
	}
	return pc
}

func applyCustomerPatch(c models.Customer, p CustomerPatch) models.Customer {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Avatar != nil {
		c.Avatar = *p.Avatar
	}
	if p.TotalOrders != nil {
		c.TotalOrders = *p.TotalOrders
	}
	if p.TotalSpent != nil {
		c.TotalSpent = *p.TotalSpent
	}
	if p.LastOrderDate != nil {
		c.LastOrderDate = p.LastOrderDate
	}
	return c
}

// cascadeConfirmation drives the linked order to paymentStatus=confirmed
// and status=preparing, and credits the customer's running totals.
func cascadeConfirmation(state AppState, pc models.PaymentConfirmation, now time.Time) AppState {
	var credited *models.Order
	for i, o := range state.Orders {
		if o.ID != pc.OrderID {
			continue
		}
		if o.Status != models.StatusPreparing {
			o.StatusHistory = append(o.StatusHistory, models.StatusChange{
				From:      o.Status,
				To:        models.StatusPreparing,
				ChangedBy: "system",
				Note:      "Payment confirmed (" + pc.ID + ")",
				ChangedAt: now,
			})
			o.Status = models.StatusPreparing
		}
		o.PaymentStatus = models.PaymentConfirmed
		o.UpdatedAt = now
		state.Orders[i] = o
		credited = &state.Orders[i]
	}
	if credited == nil {
		return state
	}
	for i, c := range state.Customers {
		if c.ID == credited.CustomerID {
			c.TotalOrders++
			c.TotalSpent += credited.Total
			last := now
			c.LastOrderDate = &last
			state.Customers[i] = c
		}
	}
	return state
}

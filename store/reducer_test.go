package store

import (
	"reflect"
	"testing"
	"time"

	"kobit-api/models"
)

var testNow = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func pendingOrder(id, customerID string, total int) models.Order {
	return models.Order{
		ID:            id,
		CustomerID:    customerID,
		Customer:      models.Customer{ID: customerID, Name: "Test Customer"},
		Total:         total,
		Status:        models.StatusPendingPayment,
		PaymentMethod: models.MethodBankTransfer,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}
}

func pendingConfirmation(id, orderID, customerID string, amount int) models.PaymentConfirmation {
	return models.PaymentConfirmation{
		ID:          id,
		OrderID:     orderID,
		CustomerID:  customerID,
		Amount:      amount,
		Status:      models.PaymentPending,
		SubmittedAt: testNow,
	}
}

func TestAddOrder_PrependsMostRecentFirst(t *testing.T) {
	state := Reduce(AppState{}, AddOrder{Order: pendingOrder("ORD-A", "CUST-1", 100)}, testNow)
	state = Reduce(state, AddOrder{Order: pendingOrder("ORD-B", "CUST-1", 200)}, testNow)

	if len(state.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(state.Orders))
	}
	if state.Orders[0].ID != "ORD-B" {
		t.Errorf("expected most recent order first, got %s", state.Orders[0].ID)
	}
}

func TestUpdateOrder_MergesPartialFields(t *testing.T) {
	state := AppState{Orders: []models.Order{pendingOrder("ORD-A", "CUST-1", 100)}}

	ref := "GTB0001"
	state = Reduce(state, UpdateOrder{ID: "ORD-A", Patch: OrderPatch{TransferReference: &ref}}, testNow)

	got := state.Orders[0]
	if got.TransferReference != "GTB0001" {
		t.Errorf("transfer reference not merged: %q", got.TransferReference)
	}
	if got.Status != models.StatusPendingPayment || got.Total != 100 {
		t.Errorf("unrelated fields changed: %+v", got)
	}
}

func TestUpdateOrder_StatusChangeAppendsAudit(t *testing.T) {
	state := AppState{Orders: []models.Order{pendingOrder("ORD-A", "CUST-1", 100)}}

	cancelled := models.StatusCancelled
	state = Reduce(state, UpdateOrder{
		ID:    "ORD-A",
		Patch: OrderPatch{Status: &cancelled, ChangedBy: "admin@kobit.ng", Note: "out of stock"},
	}, testNow)

	got := state.Orders[0]
	if got.Status != models.StatusCancelled {
		t.Fatalf("status = %s", got.Status)
	}
	if len(got.StatusHistory) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(got.StatusHistory))
	}
	entry := got.StatusHistory[0]
	if entry.From != models.StatusPendingPayment || entry.To != models.StatusCancelled ||
		entry.ChangedBy != "admin@kobit.ng" || entry.Note != "out of stock" {
		t.Errorf("bad audit entry: %+v", entry)
	}
}

func TestUpdateOrder_UnknownIDIsDeepNoop(t *testing.T) {
	state := AppState{
		Orders:    []models.Order{pendingOrder("ORD-A", "CUST-1", 100)},
		Customers: []models.Customer{{ID: "CUST-1", Name: "Test Customer"}},
	}

	cancelled := models.StatusCancelled
	next := Reduce(state, UpdateOrder{ID: "ORD-NOPE", Patch: OrderPatch{Status: &cancelled}}, testNow)

	if !reflect.DeepEqual(state, next) {
		t.Errorf("unknown-id update must leave state structurally equal\nbefore: %+v\nafter: %+v", state, next)
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := AppState{Orders: []models.Order{pendingOrder("ORD-A", "CUST-1", 100)}}
	snapshot := state.clone()

	cancelled := models.StatusCancelled
	Reduce(state, UpdateOrder{ID: "ORD-A", Patch: OrderPatch{Status: &cancelled}}, testNow)

	if !reflect.DeepEqual(state, snapshot) {
		t.Error("Reduce mutated its input state")
	}
}

func TestConfirmationCascade(t *testing.T) {
	state := AppState{
		Orders:               []models.Order{pendingOrder("ORD-A", "CUST-1", 9800)},
		Customers:            []models.Customer{{ID: "CUST-1", Name: "Test Customer", TotalOrders: 2, TotalSpent: 5000}},
		PaymentConfirmations: []models.PaymentConfirmation{pendingConfirmation("PAY-A", "ORD-A", "CUST-1", 9800)},
	}

	confirmed := models.PaymentConfirmed
	reviewer := "admin@kobit.ng"
	next := Reduce(state, UpdatePaymentConfirmation{
		ID:    "PAY-A",
		Patch: PaymentPatch{Status: &confirmed, ReviewedAt: &testNow, ReviewedBy: &reviewer},
	}, testNow)

	order := next.Orders[0]
	if order.PaymentStatus != models.PaymentConfirmed {
		t.Errorf("order payment status = %s, want confirmed", order.PaymentStatus)
	}
	if order.Status != models.StatusPreparing {
		t.Errorf("order status = %s, want preparing", order.Status)
	}

	pc := next.PaymentConfirmations[0]
	if pc.Status != models.PaymentConfirmed || pc.ReviewedBy != reviewer || pc.ReviewedAt == nil {
		t.Errorf("confirmation audit fields not set: %+v", pc)
	}

	// Cascade credits the customer's running totals
	cust := next.Customers[0]
	if cust.TotalOrders != 3 {
		t.Errorf("customer totalOrders = %d, want 3", cust.TotalOrders)
	}
	if cust.TotalSpent != 5000+9800 {
		t.Errorf("customer totalSpent = %d, want %d", cust.TotalSpent, 5000+9800)
	}
	if cust.LastOrderDate == nil || !cust.LastOrderDate.Equal(testNow) {
		t.Errorf("customer lastOrderDate not set: %v", cust.LastOrderDate)
	}
}

func TestRejectionLeavesOrderUntouched(t *testing.T) {
	order := pendingOrder("ORD-A", "CUST-1", 9800)
	state := AppState{
		Orders:               []models.Order{order},
		PaymentConfirmations: []models.PaymentConfirmation{pendingConfirmation("PAY-A", "ORD-A", "CUST-1", 9800)},
	}

	rejected := models.PaymentRejected
	next := Reduce(state, UpdatePaymentConfirmation{
		ID:    "PAY-A",
		Patch: PaymentPatch{Status: &rejected},
	}, testNow)

	if !reflect.DeepEqual(next.Orders[0], order) {
		t.Errorf("rejection must not touch the linked order:\nbefore: %+v\nafter: %+v", order, next.Orders[0])
	}
	if next.PaymentConfirmations[0].Status != models.PaymentRejected {
		t.Errorf("confirmation status = %s", next.PaymentConfirmations[0].Status)
	}
}

func TestStatsRecomputation(t *testing.T) {
	confirmedOrder := pendingOrder("ORD-A", "CUST-1", 30000)
	confirmedOrder.PaymentStatus = models.PaymentConfirmed
	state := AppState{
		Orders: []models.Order{
			confirmedOrder,
			pendingOrder("ORD-B", "CUST-1", 20000),
		},
		Customers: []models.Customer{
			{ID: "CUST-1", JoinDate: testNow.Add(-10 * 24 * time.Hour)},
			{ID: "CUST-2", JoinDate: testNow.Add(-90 * 24 * time.Hour)},
		},
	}

	state = Reduce(state, UpdateStats{}, testNow)
	if state.Stats.TotalRevenue != 30000 {
		t.Errorf("totalRevenue = %d, want 30000 (confirmed orders only)", state.Stats.TotalRevenue)
	}
	if state.Stats.TotalOrders != 2 {
		t.Errorf("totalOrders = %d, want 2 (all orders)", state.Stats.TotalOrders)
	}
	if state.Stats.NewCustomers != 1 {
		t.Errorf("newCustomers = %d, want 1", state.Stats.NewCustomers)
	}
	if state.Stats.AvgOrderValue != 15000 {
		t.Errorf("avgOrderValue = %d, want 15000", state.Stats.AvgOrderValue)
	}

	// Flipping a confirmed order to rejected drops revenue by exactly its total
	rejected := models.PaymentRejected
	state = Reduce(state, UpdateOrder{ID: "ORD-A", Patch: OrderPatch{PaymentStatus: &rejected}}, testNow)
	state = Reduce(state, UpdateStats{}, testNow)
	if state.Stats.TotalRevenue != 0 {
		t.Errorf("totalRevenue after rejection = %d, want 0", state.Stats.TotalRevenue)
	}
}

func TestStats_DivideByZeroGuard(t *testing.T) {
	state := Reduce(AppState{}, UpdateStats{}, testNow)
	if state.Stats.AvgOrderValue != 0 {
		t.Errorf("avgOrderValue on empty state = %d, want 0", state.Stats.AvgOrderValue)
	}
}

func TestMenuItemActions(t *testing.T) {
	state := AppState{MenuItems: []models.MenuItem{{ID: "ITEM-001", Name: "Jollof Rice", Price: 15000}}}

	state = Reduce(state, AddMenuItem{Item: models.MenuItem{ID: "ITEM-002", Name: "Suya", Price: 8000}}, testNow)
	if len(state.MenuItems) != 2 || state.MenuItems[0].ID != "ITEM-002" {
		t.Fatalf("add should prepend: %+v", state.MenuItems)
	}

	state = Reduce(state, UpdateMenuItem{
		ID:   "ITEM-001",
		Item: models.MenuItem{Name: "Party Jollof", Price: 16000},
	}, testNow)
	var updated models.MenuItem
	for _, m := range state.MenuItems {
		if m.ID == "ITEM-001" {
			updated = m
		}
	}
	if updated.Name != "Party Jollof" || updated.Price != 16000 {
		t.Errorf("update not applied: %+v", updated)
	}

	state = Reduce(state, DeleteMenuItem{ID: "ITEM-002"}, testNow)
	if len(state.MenuItems) != 1 || state.MenuItems[0].ID != "ITEM-001" {
		t.Errorf("delete not applied: %+v", state.MenuItems)
	}
}

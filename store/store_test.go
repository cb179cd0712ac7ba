package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"kobit-api/cart"
	"kobit-api/models"
)

func newTestStore(initial AppState) *Store {
	s := New(initial)
	s.SetClock(func() time.Time { return testNow })
	return s
}

func TestDispatch_AutoRecomputesStats(t *testing.T) {
	s := newTestStore(AppState{})

	order := pendingOrder("ORD-A", "CUST-1", 12000)
	order.PaymentStatus = models.PaymentConfirmed
	s.Dispatch(AddOrder{Order: order})

	stats := s.State().Stats
	if stats.TotalOrders != 1 {
		t.Errorf("totalOrders = %d, want 1 (stats must recompute without an explicit UpdateStats)", stats.TotalOrders)
	}
	if stats.TotalRevenue != 12000 {
		t.Errorf("totalRevenue = %d, want 12000", stats.TotalRevenue)
	}
}

func TestDispatch_UnknownIDKeepsState(t *testing.T) {
	initial := AppState{Orders: []models.Order{pendingOrder("ORD-A", "CUST-1", 100)}}
	s := newTestStore(initial)
	before := s.State()

	cancelled := models.StatusCancelled
	s.Dispatch(UpdateOrder{ID: "ORD-MISSING", Patch: OrderPatch{Status: &cancelled}})

	after := s.State()
	if !reflect.DeepEqual(before.Orders, after.Orders) {
		t.Error("dispatching an unknown-id update changed the orders")
	}
}

func TestSubscribe_ListenerSeesAppliedAction(t *testing.T) {
	s := newTestStore(AppState{})

	var gotType string
	var gotOrders int
	s.Subscribe(func(action Action, state AppState) {
		gotType = ActionType(action)
		gotOrders = len(state.Orders)
	})

	s.Dispatch(AddOrder{Order: pendingOrder("ORD-A", "CUST-1", 100)})
	if gotType != "ADD_ORDER" {
		t.Errorf("listener saw action %q", gotType)
	}
	if gotOrders != 1 {
		t.Errorf("listener saw %d orders, want 1", gotOrders)
	}
}

func TestSearchConfirmations(t *testing.T) {
	s := newTestStore(Seed())

	t.Run("filter by status", func(t *testing.T) {
		pending := s.SearchConfirmations(models.PaymentPending, "")
		if len(pending) != 1 || pending[0].ID != "PAY-001" {
			t.Fatalf("expected seeded pending confirmation, got %+v", pending)
		}
		if got := s.SearchConfirmations(models.PaymentRejected, ""); len(got) != 0 {
			t.Errorf("expected no rejected confirmations, got %d", len(got))
		}
	})

	t.Run("search is case-insensitive across name, order id, reference", func(t *testing.T) {
		for _, term := range []string{"james", "JAMES", "ord-002", "gtb240125"} {
			if got := s.SearchConfirmations("", term); len(got) != 1 {
				t.Errorf("term %q matched %d confirmations, want 1", term, len(got))
			}
		}
		if got := s.SearchConfirmations("", "sophia"); len(got) != 0 {
			t.Errorf("term sophia should match nothing, got %d", len(got))
		}
	})
}

func TestComputePricing(t *testing.T) {
	p := ComputePricing(10000)
	if p.DeliveryFee != 500 {
		t.Errorf("deliveryFee = %d, want 500", p.DeliveryFee)
	}
	if p.ServiceFee != 500 {
		t.Errorf("serviceFee = %d, want 500 (5%%)", p.ServiceFee)
	}
	if p.Tax != 750 {
		t.Errorf("tax = %d, want 750 (7.5%%)", p.Tax)
	}
	if p.Total != 10000+500+500+750 {
		t.Errorf("total = %d", p.Total)
	}
}

// Full checkout → confirmation → preparing walk-through
func TestEndToEndCheckoutFlow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(AppState{
		Customers: []models.Customer{{ID: "CUST-9", Name: "Ada Obi", Email: "ada@email.com", JoinDate: testNow}},
	})

	ct := cart.Load(ctx, cart.NewMemoryStore(), "user-9")
	ct.AddItem(ctx, cart.Item{ID: 1, Name: "Jollof Rice", Price: 3500})
	ct.AddItem(ctx, cart.Item{ID: 1, Name: "Jollof Rice", Price: 3500})
	ct.AddItem(ctx, cart.Item{ID: 2, Name: "Moi Moi", Price: 2000})

	if ct.Subtotal() != 9000 {
		t.Fatalf("subtotal = %d, want 9000", ct.Subtotal())
	}

	pricing := Pricing{Subtotal: 9000, DeliveryFee: 500, ServiceFee: 300, Total: 9800}
	customer, _ := s.CustomerByID("CUST-9")
	order := NewOrder(GenerateOrderID(testNow), customer, ct.Items(), pricing, "", testNow)

	if order.Total != 9800 {
		t.Fatalf("order total = %d, want 9800", order.Total)
	}
	if order.Status != models.StatusPendingPayment || order.PaymentStatus != models.PaymentPending {
		t.Fatalf("fresh order must be pending_payment/pending, got %s/%s", order.Status, order.PaymentStatus)
	}

	s.Dispatch(AddOrder{Order: order})

	confirmation := models.PaymentConfirmation{
		ID:                GeneratePaymentID(testNow),
		OrderID:           order.ID,
		CustomerID:        customer.ID,
		Amount:            9800,
		TransferReference: "FBN2024TEST",
		TransferDate:      testNow,
		TransferAmount:    9800,
		Status:            models.PaymentPending,
		SubmittedAt:       testNow,
	}
	s.Dispatch(AddPaymentConfirmation{Confirmation: confirmation})

	confirmed := models.PaymentConfirmed
	reviewer := "admin@kobit.ng"
	s.Dispatch(UpdatePaymentConfirmation{
		ID:    confirmation.ID,
		Patch: PaymentPatch{Status: &confirmed, ReviewedAt: &testNow, ReviewedBy: &reviewer},
	})

	got, ok := s.OrderByID(order.ID)
	if !ok {
		t.Fatal("order vanished")
	}
	if got.Status != models.StatusPreparing {
		t.Errorf("order status = %s, want preparing", got.Status)
	}
	if got.PaymentStatus != models.PaymentConfirmed {
		t.Errorf("order paymentStatus = %s, want confirmed", got.PaymentStatus)
	}

	// Derived stats follow the confirmation
	if stats := s.State().Stats; stats.TotalRevenue != 9800 {
		t.Errorf("totalRevenue = %d, want 9800", stats.TotalRevenue)
	}
}

func TestGenerateIDs(t *testing.T) {
	now := time.UnixMilli(1706189123456)
	if got := GenerateOrderID(now); got != "ORD-123456" {
		t.Errorf("order id = %q", got)
	}
	if got := GenerateCustomerID(now); got != "CUST-123456" {
		t.Errorf("customer id = %q", got)
	}
	if got := GeneratePaymentID(now); got != "PAY-123456" {
		t.Errorf("payment id = %q", got)
	}
	if got := GenerateItemID(7); got != "ITEM-007" {
		t.Errorf("item id = %q", got)
	}
}

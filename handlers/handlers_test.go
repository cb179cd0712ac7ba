package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kobit-api/cart"
	"kobit-api/events"
	"kobit-api/models"
	"kobit-api/store"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler() *Handler {
	return &Handler{
		Store:  store.New(store.Seed()),
		Carts:  cart.NewMemoryStore(),
		Events: events.Nop{},
		Hub:    NewHub(),
	}
}

// testContext builds a gin context carrying an authenticated caller
func testContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func asCustomer(c *gin.Context, userID uint, customerID string) {
	c.Set("userID", userID)
	c.Set("role", string(models.RoleCustomer))
	c.Set("customerID", customerID)
	c.Set("email", "customer@email.com")
}

func asAdmin(c *gin.Context) {
	c.Set("userID", uint(99))
	c.Set("role", string(models.RoleAdmin))
	c.Set("customerID", "")
	c.Set("email", "admin@kobit.ng")
}

func TestAdminReviewPayment_ConfirmCascades(t *testing.T) {
	h := newTestHandler()

	c, w := testContext(t, http.MethodPut, "/api/admin/payments/PAY-001/review",
		gin.H{"decision": "confirm"})
	asAdmin(c)
	c.Params = gin.Params{{Key: "id", Value: "PAY-001"}}

	h.AdminReviewPayment(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	order, ok := h.Store.OrderByID("ORD-002")
	if !ok {
		t.Fatal("seeded order missing")
	}
	if order.Status != models.StatusPreparing {
		t.Errorf("order status = %s, want preparing", order.Status)
	}
	if order.PaymentStatus != models.PaymentConfirmed {
		t.Errorf("order paymentStatus = %s, want confirmed", order.PaymentStatus)
	}

	pc, _ := h.Store.ConfirmationByID("PAY-001")
	if pc.ReviewedBy != "admin@kobit.ng" || pc.ReviewedAt == nil {
		t.Errorf("review audit fields not set: %+v", pc)
	}

	// Second review of the same confirmation is rejected
	c2, w2 := testContext(t, http.MethodPut, "/api/admin/payments/PAY-001/review",
		gin.H{"decision": "reject"})
	asAdmin(c2)
	c2.Params = gin.Params{{Key: "id", Value: "PAY-001"}}
	h.AdminReviewPayment(c2)
	if w2.Code != http.StatusConflict {
		t.Errorf("re-review status = %d, want 409", w2.Code)
	}
}

func TestAdminReviewPayment_RejectLeavesOrder(t *testing.T) {
	h := newTestHandler()
	before, _ := h.Store.OrderByID("ORD-002")

	c, w := testContext(t, http.MethodPut, "/api/admin/payments/PAY-001/review",
		gin.H{"decision": "reject", "note": "amount mismatch"})
	asAdmin(c)
	c.Params = gin.Params{{Key: "id", Value: "PAY-001"}}

	h.AdminReviewPayment(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	after, _ := h.Store.OrderByID("ORD-002")
	if after.Status != before.Status || after.PaymentStatus != before.PaymentStatus {
		t.Errorf("rejection changed the order: %s/%s → %s/%s",
			before.Status, before.PaymentStatus, after.Status, after.PaymentStatus)
	}

	pc, _ := h.Store.ConfirmationByID("PAY-001")
	if pc.Status != models.PaymentRejected {
		t.Errorf("confirmation status = %s, want rejected", pc.Status)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	h := newTestHandler()

	c, w := testContext(t, http.MethodPost, "/api/customer/checkout", nil)
	asCustomer(c, 2, "CUST-002")

	h.Checkout(c)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCartAndCheckoutFlow(t *testing.T) {
	h := newTestHandler()

	add := func(id int, name string, price int) {
		c, w := testContext(t, http.MethodPost, "/api/customer/cart/items",
			gin.H{"id": id, "name": name, "price": price})
		asCustomer(c, 2, "CUST-002")
		h.AddCartItem(c)
		if w.Code != http.StatusOK {
			t.Fatalf("add item: status = %d, body = %s", w.Code, w.Body.String())
		}
	}

	add(1, "Jollof Rice", 3500)
	add(1, "Jollof Rice", 3500)
	add(2, "Moi Moi", 2000)

	c, w := testContext(t, http.MethodGet, "/api/customer/cart", nil)
	asCustomer(c, 2, "CUST-002")
	h.GetCart(c)

	var resp struct {
		Items    []cart.Item `json:"items"`
		Subtotal int         `json:"subtotal"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 cart lines, got %d", len(resp.Items))
	}
	if resp.Subtotal != 9000 {
		t.Fatalf("subtotal = %d, want 9000", resp.Subtotal)
	}

	// Checkout snapshots the cart into a pending order and clears it
	c2, w2 := testContext(t, http.MethodPost, "/api/customer/checkout", nil)
	asCustomer(c2, 2, "CUST-002")
	h.Checkout(c2)
	if w2.Code != http.StatusCreated {
		t.Fatalf("checkout status = %d, body = %s", w2.Code, w2.Body.String())
	}

	var checkout struct {
		Order models.Order `json:"order"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &checkout); err != nil {
		t.Fatal(err)
	}
	if checkout.Order.Subtotal != 9000 {
		t.Errorf("order subtotal = %d, want 9000", checkout.Order.Subtotal)
	}
	if checkout.Order.Status != models.StatusPendingPayment {
		t.Errorf("order status = %s, want pending_payment", checkout.Order.Status)
	}

	c3, w3 := testContext(t, http.MethodGet, "/api/customer/cart", nil)
	asCustomer(c3, 2, "CUST-002")
	h.GetCart(c3)
	var after struct {
		ItemCount int `json:"item_count"`
	}
	if err := json.Unmarshal(w3.Body.Bytes(), &after); err != nil {
		t.Fatal(err)
	}
	if after.ItemCount != 0 {
		t.Errorf("cart not cleared after checkout: %d items", after.ItemCount)
	}
}

func TestSubmitPaymentConfirmation_WrongOwner(t *testing.T) {
	h := newTestHandler()

	c, w := testContext(t, http.MethodPost, "/api/customer/payments/confirm", gin.H{
		"order_id":           "ORD-002", // belongs to CUST-002
		"amount":             28990,
		"transfer_reference": "GTB999",
		"transfer_date":      "2024-01-25T13:15:00Z",
	})
	asCustomer(c, 1, "CUST-001")

	h.SubmitPaymentConfirmation(c)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

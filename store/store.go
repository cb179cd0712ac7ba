package store

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"kobit-api/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "store").Logger()

// Listener observes applied actions with the resulting state snapshot
type Listener func(action Action, state AppState)

// Store wraps the pure reducer with a serialized dispatch loop. It assumes
// one logical writer per action; the mutex enforces that for HTTP callers.
// There is no durable backend binding — lifecycle is the process session.
type Store struct {
	mu        sync.Mutex
	state     AppState
	listeners []Listener
	now       func() time.Time
}

// New creates a store seeded with the given initial state
func New(initial AppState) *Store {
	return &Store{state: initial, now: time.Now}
}

// SetClock overrides the time source, for tests
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Subscribe registers a listener invoked after every dispatched action.
// Listeners run outside the dispatch lock.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Dispatch applies an action and, when the action touched orders or
// customers, recomputes derived stats as an automatic reaction.
func (s *Store) Dispatch(action Action) AppState {
	s.mu.Lock()
	now := s.now()
	s.logUnknownTarget(action)
	next := Reduce(s.state, action, now)
	if touchesAggregates(action) {
		next = Reduce(next, UpdateStats{}, now)
	}
	s.state = next
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(action, next)
	}
	return next
}

// State returns a snapshot of the current state
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Now returns the store's current clock reading
func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now()
}

// touchesAggregates reports whether the action changes orders or customers,
// the inputs of the derived stats
func touchesAggregates(action Action) bool {
	switch action.(type) {
	case AddOrder, UpdateOrder, AddCustomer, UpdateCustomer, UpdatePaymentConfirmation:
		return true
	}
	return false
}

// logUnknownTarget emits a diagnostic when an update references an id that
// is not in the store. The update itself stays a no-op.
func (s *Store) logUnknownTarget(action Action) {
	warn := func(kind, id string) {
		logger.Warn().Str("action", ActionType(action)).Str(kind, id).
			Msg("Update references unknown id, applying as no-op")
	}
	switch a := action.(type) {
	case UpdateOrder:
		if _, ok := findOrder(s.state.Orders, a.ID); !ok {
			warn("order_id", a.ID)
		}
	case UpdatePaymentConfirmation:
		for _, pc := range s.state.PaymentConfirmations {
			if pc.ID == a.ID {
				return
			}
		}
		warn("payment_id", a.ID)
	case UpdateCustomer:
		for _, c := range s.state.Customers {
			if c.ID == a.ID {
				return
			}
		}
		warn("customer_id", a.ID)
	}
}

func findOrder(orders []models.Order, id string) (models.Order, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// ── Query surface ──────────────────────────────────────────────────────

// OrderByID looks up an order
func (s *Store) OrderByID(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findOrder(s.state.Orders, id)
}

// OrdersForCustomer returns the customer's orders, most recent first
func (s *Store) OrdersForCustomer(customerID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.state.Orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

// ConfirmationByID looks up a payment confirmation
func (s *Store) ConfirmationByID(id string) (models.PaymentConfirmation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, pc := range s.state.PaymentConfirmations {
		if pc.ID == id {
			return pc, true
		}
	}
	return models.PaymentConfirmation{}, false
}

// SearchConfirmations filters by status ("" matches all) and a
// case-insensitive term matched against customer name, order id, or
// transfer reference.
func (s *Store) SearchConfirmations(status models.PaymentStatus, term string) []models.PaymentConfirmation {
	s.mu.Lock()
	defer s.mu.Unlock()
	term = strings.ToLower(term)
	var out []models.PaymentConfirmation
	for _, pc := range s.state.PaymentConfirmations {
		if status != "" && pc.Status != status {
			continue
		}
		if term != "" && !s.confirmationMatches(pc, term) {
			continue
		}
		out = append(out, pc)
	}
	return out
}

func (s *Store) confirmationMatches(pc models.PaymentConfirmation, term string) bool {
	if strings.Contains(strings.ToLower(pc.OrderID), term) ||
		strings.Contains(strings.ToLower(pc.TransferReference), term) {
		return true
	}
	for _, c := range s.state.Customers {
		if c.ID == pc.CustomerID {
			return strings.Contains(strings.ToLower(c.Name), term)
		}
	}
	return false
}

// CustomerByID looks up a customer
func (s *Store) CustomerByID(id string) (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.state.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// CustomerByEmail looks up a customer by email, case-insensitive
func (s *Store) CustomerByEmail(email string) (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.state.Customers {
		if strings.EqualFold(c.Email, email) {
			return c, true
		}
	}
	return models.Customer{}, false
}

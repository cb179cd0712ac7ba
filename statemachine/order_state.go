package statemachine

import (
	"errors"

	"kobit-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "admin", "customer", "system"
}

// validTransitions is the authoritative state machine definition.
// "system" rows are driven by the payment confirmation cascade, never by
// a direct API call.
var validTransitions = []Transition{
	// Admin marks the payment confirmed explicitly
	{From: models.StatusPendingPayment, To: models.StatusPaymentConfirmed, Actor: "admin"},
	// Confirmation cascade jumps straight to preparing
	{From: models.StatusPendingPayment, To: models.StatusPreparing, Actor: "system"},
	{From: models.StatusPaymentConfirmed, To: models.StatusPreparing, Actor: "admin"},
	// Kitchen progress
	{From: models.StatusPreparing, To: models.StatusReady, Actor: "admin"},
	{From: models.StatusReady, To: models.StatusDelivered, Actor: "admin"},
	// Cancellation is reachable from any non-terminal state
	{From: models.StatusPendingPayment, To: models.StatusCancelled, Actor: "admin"},
	{From: models.StatusPendingPayment, To: models.StatusCancelled, Actor: "customer"},
	{From: models.StatusPaymentConfirmed, To: models.StatusCancelled, Actor: "admin"},
	{From: models.StatusPaymentConfirmed, To: models.StatusCancelled, Actor: "customer"},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: "admin"},
	{From: models.StatusReady, To: models.StatusCancelled, Actor: "admin"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether a state has no outgoing transitions
func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusDelivered || status == models.StatusCancelled
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}

package order

import (
	"errors"
	"fmt"

	"galeteria/internal/pkg/errs"
)

// ErrInvalidTransition is returned for any status change outside the
// transition table, including transitions out of a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order. Transitions are
// table-driven: Next is the single place the (current status, target status,
// order type) rules of the workflow live, so callers never re-derive the
// branching themselves.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusInPreparation is the initial status: the kitchen is working.
	StatusInPreparation

	// StatusReady means the order can be handed off.
	StatusReady

	// StatusOutForDelivery means a delivery order left with the courier.
	StatusOutForDelivery

	// StatusAwaitingPickup means a pickup order's customer was notified.
	StatusAwaitingPickup

	// StatusDelivered is the successful terminal state.
	StatusDelivered

	// StatusCancelled is the terminal state of a cancelled order.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusInPreparation:  "in_preparation",
		StatusReady:          "ready",
		StatusOutForDelivery: "out_for_delivery",
		StatusAwaitingPickup: "awaiting_pickup",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// StatusFromString parses a status from its wire form.
func StatusFromString(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if st != StatusUnknown && str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if s < StatusInPreparation || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// transitionKey identifies one row of the workflow table.
type transitionKey struct {
	from Status
	to   Status
	typ  Type
}

// transitionTable maps every legal forward transition to whether it forces
// the paid flag to true. Cancellation is not in the table: it is reachable
// from any non-terminal state and handled by Order.Cancel.
func transitionTable() map[transitionKey]bool {
	return map[transitionKey]bool{
		{StatusInPreparation, StatusReady, TypeTab}:      true, // tab orders are settled at ready
		{StatusInPreparation, StatusReady, TypePickup}:   false,
		{StatusInPreparation, StatusReady, TypeDelivery}: false,

		{StatusReady, StatusOutForDelivery, TypeDelivery}: false,
		{StatusReady, StatusAwaitingPickup, TypePickup}:   false,

		{StatusOutForDelivery, StatusDelivered, TypeDelivery}: false,
		{StatusAwaitingPickup, StatusDelivered, TypePickup}:   false,
	}
}

// Next validates the transition from s to target for an order of the given
// type. It returns whether the transition forces the paid flag to true.
//
// Example:
//
//	forcePaid, err := order.StatusInPreparation.Next(order.StatusReady, order.TypeTab)
//	// forcePaid == true, err == nil
func (s Status) Next(target Status, orderType Type) (bool, error) {
	forcePaid, ok := transitionTable()[transitionKey{from: s, to: target, typ: orderType}]
	if !ok {
		return false, fmt.Errorf("%w: %s -> %s for %s order",
			ErrInvalidTransition, s, target, orderType)
	}
	return forcePaid, nil
}

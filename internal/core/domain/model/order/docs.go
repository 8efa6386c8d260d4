// Package order contains the Order aggregate and its status state machine.
//
// An order is created in preparation, moves toward handoff along a path
// picked by its type, and ends in exactly one terminal state:
//
//	in_preparation ──> ready ──┬──> out_for_delivery ──> delivered   (delivery)
//	                           └──> awaiting_pickup  ──> delivered   (pickup)
//	any non-terminal ──> cancelled
//
// Tab orders stop at ready and are forced paid when they get there; the
// other types start unpaid and settle via an explicit paid flag on the
// final transition. All transition and payment rules live in one table in
// status.go; the aggregate's methods are thin guards over it.
//
// Lines and the total are fixed at creation. Cancellation is a terminal
// status, not a deletion, and it is the caller's cue to release the stock
// the order reserved.
package order

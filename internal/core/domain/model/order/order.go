package order

import (
	"errors"
	"fmt"
	"time"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyTerminal is returned when cancelling an order that is
	// already delivered or cancelled. Cancellation happens at most once.
	ErrOrderAlreadyTerminal = errors.New("order is already in a terminal state")
)

// Order is the aggregate root of the order engine. It owns its lines, the
// total computed once at creation, the status lifecycle and the paid flag.
//
// Invariants:
//   - Lines and total never change after creation; later price changes do
//     not retroactively affect the order.
//   - Status moves only along the table in status.go; terminal states are
//     final.
//   - The paid flag changes only through transitions: forced true for tab
//     orders reaching ready, or set by an explicit caller override.
//   - The id comes from a monotonic counter and is never reused.
type Order struct {
	id        int64
	clientID  kernel.UUID
	typ       Type
	lines     []Line
	total     kernel.Money
	status    Status
	createdAt time.Time
	paid      bool

	isConstructed bool
}

// NewOrder creates an order in StatusInPreparation. Tab orders start paid
// (the tab is settled at the counter); delivery and pickup orders start
// unpaid. Lines must be non-empty and the id positive.
func NewOrder(id int64, clientID kernel.UUID, typ Type, lines []Line, total kernel.Money, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        StatusInPreparation,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setType(typ),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.total = total
	o.createdAt = createdAt
	o.paid = typ == TypeTab
	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored
// status and paid flag.
func RestoreOrder(id int64, clientID kernel.UUID, typ Type, lines []Line, total kernel.Money,
	status Status, createdAt time.Time, paid bool) (*Order, error) {
	o, err := NewOrder(id, clientID, typ, lines, total, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.paid = paid
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's sequential identifier.
func (o *Order) ID() int64 {
	return o.id
}

// ClientID returns the ordering client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Type returns the order type.
func (o *Order) Type() Type {
	return o.typ
}

// Lines returns a copy of the order's lines, preserving submission order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total returns the order total computed at creation time.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Paid reports whether the order has been settled.
func (o *Order) Paid() bool {
	return o.paid
}

// ChangeStatus applies one transition from the workflow table. The optional
// paid override wins over the table's payment rule; when omitted, paid is
// left unchanged unless the transition forces it true (tab orders reaching
// ready). Cancellation is not a valid target here; Cancel pairs the status
// change with the stock release.
func (o *Order) ChangeStatus(target Status, paidOverride *bool) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == StatusCancelled {
		return fmt.Errorf("%w: %s -> %s must go through cancellation",
			ErrInvalidTransition, o.status, target)
	}

	forcePaid, err := o.status.Next(target, o.typ)
	if err != nil {
		return err
	}

	o.status = target
	switch {
	case paidOverride != nil:
		o.paid = *paidOverride
	case forcePaid:
		o.paid = true
	}
	return nil
}

// Cancel moves the order to its cancelled terminal state. Cancelling an
// order that is already delivered or cancelled fails with
// ErrOrderAlreadyTerminal so stock is never released twice.
func (o *Order) Cancel() error {
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrOrderAlreadyTerminal, o.status)
	}

	o.status = StatusCancelled
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setType(typ Type) error {
	if err := typ.Validate(); err != nil {
		return err
	}
	o.typ = typ
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

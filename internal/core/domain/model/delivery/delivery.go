// Package delivery contains the Delivery aggregate: the transit record of a
// delivery-type order. At most one Delivery exists per order; it is created
// when the order is opened (or first marked ready for delivery) and is
// never deleted, only completed.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"galeteria/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDeliveryAlreadyCompleted is returned when starting or completing a
	// delivery that has already reached its terminal state.
	ErrDeliveryAlreadyCompleted = errors.New("delivery is already completed")
)

// Status represents the transit state of a delivery.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusEnRoute means the delivery is open or moving.
	StatusEnRoute

	// StatusCompleted is the terminal state.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusEnRoute:   "en_route",
		StatusCompleted: "completed",
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
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if s != StatusEnRoute && s != StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery status", s))
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

// Delivery tracks physical transit for one delivery-type order. It opens
// en_route with no start timestamp; Start stamps the moment the courier
// leaves, Complete closes it.
type Delivery struct {
	id        int64
	orderID   int64
	status    Status
	startedAt *time.Time

	isConstructed bool
}

// NewDelivery opens a delivery for an order in StatusEnRoute.
func NewDelivery(id, orderID int64) (*Delivery, error) {
	d := &Delivery{
		status:        StatusEnRoute,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(id, orderID int64, status Status, startedAt *time.Time) (*Delivery, error) {
	d, err := NewDelivery(id, orderID)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	d.startedAt = startedAt
	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's sequential identifier.
func (d *Delivery) ID() int64 {
	return d.id
}

// OrderID returns the identifier of the order being delivered.
func (d *Delivery) OrderID() int64 {
	return d.orderID
}

// Status returns the current transit status.
func (d *Delivery) Status() Status {
	return d.status
}

// StartedAt returns the departure timestamp, or nil if the courier has not
// left yet.
func (d *Delivery) StartedAt() *time.Time {
	return d.startedAt
}

// Start marks the delivery en_route and stamps the departure time.
// Starting an en_route delivery again just restamps it; starting a
// completed one fails.
func (d *Delivery) Start(at time.Time) error {
	if d.status == StatusCompleted {
		return fmt.Errorf("%w: delivery %d", ErrDeliveryAlreadyCompleted, d.id)
	}

	d.status = StatusEnRoute
	d.startedAt = &at
	return nil
}

// Complete closes the delivery. Completing twice fails.
func (d *Delivery) Complete() error {
	if d.status == StatusCompleted {
		return fmt.Errorf("%w: delivery %d", ErrDeliveryAlreadyCompleted, d.id)
	}

	d.status = StatusCompleted
	return nil
}

func (d *Delivery) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}
	d.orderID = orderID
	return nil
}

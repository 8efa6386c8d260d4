package commands

import (
	"context"
	"errors"
	"time"

	"galeteria/internal/core/domain/model/delivery"
	"galeteria/internal/core/ports"
	"galeteria/internal/pkg/errs"
)

// ErrDeliveryNotFound is returned when an operation needs an order's
// delivery record and none exists. Starting a delivery for an order that
// never opened one is a defined gap in the workflow, surfaced as this typed
// sentinel instead of a silent no-op.
var ErrDeliveryNotFound = errors.New("no delivery record for order")

// DeliveryCoordinator owns the delivery side of the order workflow: opening
// a record when a delivery order is created or marked ready, stamping the
// departure, and closing the record on completion. It guards the
// one-delivery-per-order invariant: Open never creates a second record.
//
// The coordinator is stateless; it operates on the repositories of the
// caller's unit of work so its writes commit or roll back with the rest of
// the operation.
type DeliveryCoordinator struct{}

// NewDeliveryCoordinator creates a DeliveryCoordinator instance.
func NewDeliveryCoordinator() DeliveryCoordinator {
	return DeliveryCoordinator{}
}

// Open returns the order's delivery record, creating one en_route with the
// next sequential id if none exists yet. Calling Open repeatedly for the
// same order always yields the same single record.
func (DeliveryCoordinator) Open(ctx context.Context, uow OrderUoW, orderID int64) (*delivery.Delivery, error) {
	existing, err := uow.DeliveryRepository().GetByOrderID(ctx, orderID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	id, err := uow.CounterRepository().Next(ctx, ports.CounterNextDeliveryID)
	if err != nil {
		return nil, err
	}

	created, err := delivery.NewDelivery(id, orderID)
	if err != nil {
		return nil, err
	}

	if err := uow.DeliveryRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

// Start stamps the order's delivery en_route at the given time. Returns
// ErrDeliveryNotFound when the order has no delivery record.
func (DeliveryCoordinator) Start(ctx context.Context, uow OrderUoW, orderID int64, at time.Time) (*delivery.Delivery, error) {
	d, err := uow.DeliveryRepository().GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrDeliveryNotFound
		}
		return nil, err
	}

	if err := d.Start(at); err != nil {
		return nil, err
	}

	if err := uow.DeliveryRepository().Update(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// Complete closes the order's delivery record. Completing an already
// completed record is a no-op; a missing record returns
// ErrDeliveryNotFound. Order status is not touched here; the order
// engine's delivered transition is the authority for that.
func (DeliveryCoordinator) Complete(ctx context.Context, uow OrderUoW, orderID int64) (*delivery.Delivery, error) {
	d, err := uow.DeliveryRepository().GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrDeliveryNotFound
		}
		return nil, err
	}

	if d.Status() == delivery.StatusCompleted {
		return d, nil
	}

	if err := d.Complete(); err != nil {
		return nil, err
	}

	if err := uow.DeliveryRepository().Update(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

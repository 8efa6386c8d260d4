package queries

import (
	"context"

	"galeteria/internal/core/domain/model/delivery"
	"galeteria/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves en-route deliveries with their
// destination details.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery
// queries.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle returns the deliveries currently in flight, sorted by id. A
// delivery counts as active only while its order is ready or out for
// delivery; records of cancelled orders stay en_route in storage but never
// show on the board.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			o.status,
			c.name,
			c.address,
			d.started_at
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		JOIN clients c ON c.id = o.client_id
		WHERE d.status != ?
		  AND o.status IN (?, ?)
		ORDER BY d.id
	`, delivery.StatusCompleted.String(),
		order.StatusReady.String(), order.StatusOutForDelivery.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var deliveryResp GetActiveDeliveriesQueryResponse

		err = rows.Scan(
			&deliveryResp.ID,
			&deliveryResp.OrderID,
			&deliveryResp.OrderStatus,
			&deliveryResp.ClientName,
			&deliveryResp.ClientAddress,
			&deliveryResp.StartedAt,
		)
		if err != nil {
			return nil, err
		}

		deliveries = append(deliveries, deliveryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

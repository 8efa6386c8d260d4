package queries

import (
	"context"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves open orders from the database.
// Delivered and cancelled orders are filtered out to keep the board to the
// active workload.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for open order
// queries.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle returns all non-terminal orders sorted by id, each with its lines
// in submission order.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			c.name,
			o.order_type,
			o.status,
			o.paid,
			o.total_cents,
			o.created_at
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.status NOT IN (?, ?)
		ORDER BY o.id
	`, order.StatusDelivered.String(), order.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[int64]int)
	for rows.Next() {
		var orderResp GetUncompletedOrdersQueryResponse
		var clientID uuid.UUID

		err = rows.Scan(
			&orderResp.ID,
			&clientID,
			&orderResp.ClientName,
			&orderResp.OrderType,
			&orderResp.Status,
			&orderResp.Paid,
			&orderResp.TotalCents,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ClientID = id
		orderResp.Lines = make([]GetUncompletedOrdersLine, 0)

		index[orderResp.ID] = len(orders)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	lineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			quantity
		FROM order_lines
		WHERE order_id IN (?)
		ORDER BY order_id, line_no
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var orderID int64
		var productID uuid.UUID
		var quantity int

		if err = lineRows.Scan(&orderID, &productID, &quantity); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		pos, ok := index[orderID]
		if !ok {
			continue
		}
		orders[pos].Lines = append(orders[pos].Lines, GetUncompletedOrdersLine{
			ProductID: id,
			Quantity:  quantity,
		})
	}

	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

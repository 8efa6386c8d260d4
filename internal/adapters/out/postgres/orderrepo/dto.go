// Package orderrepo persists order aggregates across two tables: the order
// row itself and one order_lines row per position, keyed by (order_id,
// line_no) to preserve submission order.
package orderrepo

import (
	"time"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Type and status are stored in their wire forms; ids come
// from the counters table, not a database sequence.
type OrderDTO struct {
	ID         int64          `gorm:"primaryKey;autoIncrement:false"`
	ClientID   uuid.UUID      `gorm:"type:uuid;index;not null"`
	OrderType  string         `gorm:"not null"`
	Status     string         `gorm:"not null;index"`
	Paid       bool           `gorm:"not null"`
	TotalCents int64          `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"not null"`
	Lines      []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one order position. LineNo keeps the submission order so
// cancellation releases lines in the same sequence they reserved.
type OrderLineDTO struct {
	OrderID   int64     `gorm:"primaryKey;autoIncrement:false"`
	LineNo    int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for i, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:   aggregate.ID(),
			LineNo:    i + 1,
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		ClientID:   aggregate.ClientID().Bytes(),
		OrderType:  aggregate.Type().String(),
		Status:     aggregate.Status().String(),
		Paid:       aggregate.Paid(),
		TotalCents: aggregate.Total().Cents(),
		CreatedAt:  aggregate.CreatedAt(),
		Lines:      lineDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, idErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.ID, clientID, orderType, lines, total, status, dto.CreatedAt, dto.Paid)
}

// Package deliveryrepo persists delivery records. The unique index on
// order_id enforces the one-delivery-per-order invariant at the database
// level too.
package deliveryrepo

import (
	"time"

	"galeteria/internal/core/domain/model/delivery"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. StartedAt stays NULL until the courier leaves.
type DeliveryDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	OrderID   int64  `gorm:"uniqueIndex;not null"`
	Status    string `gorm:"not null;index"`
	StartedAt *time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:        aggregate.ID(),
		OrderID:   aggregate.OrderID(),
		Status:    aggregate.Status().String(),
		StartedAt: aggregate.StartedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(dto.ID, dto.OrderID, status, dto.StartedAt)
}

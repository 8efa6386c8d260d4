// Package productrepo persists the catalog: product rows with their price
// in cents and the live stock counter.
package productrepo

import (
	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Category is stored in its wire form.
type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	PriceCents int64     `gorm:"not null"`
	Stock      int       `gorm:"not null"`
	Category   string    `gorm:"not null;index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		PriceCents: aggregate.Price().Cents(),
		Stock:      aggregate.Stock(),
		Category:   aggregate.Category().String(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	category, err := product.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price, dto.Stock, category)
}

package order

import (
	"errors"
	"fmt"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/pkg/errs"
)

// Line is one order position: a product reference and a positive quantity.
// Lines are owned by their order and immutable after creation; cancellation
// releases exactly the product/quantity pairs recorded here.
type Line struct {
	productID kernel.UUID
	quantity  int
}

// NewLine creates a validated order line.
func NewLine(productID kernel.UUID, quantity int) (Line, error) {
	line := Line{}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// ProductID returns the referenced product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

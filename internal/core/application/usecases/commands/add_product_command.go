package commands

import (
	"errors"
	"fmt"

	"galeteria/internal/core/domain/model/product"
	"galeteria/internal/pkg/errs"
	"galeteria/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand represents a request to register a new catalog product
// with its unit price in cents and the initial stock on hand.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	name       string
	priceCents int64
	stock      int
	category   product.Category

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to register a catalog product.
// Name must be non-empty, price non-negative, stock non-negative and the
// category one of the defined values.
func NewAddProductCommand(name string, priceCents int64, stock int, category product.Category) (AddProductCommand, error) {
	productCommand := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setName(name),
		productCommand.setPriceCents(priceCents),
		productCommand.setStock(stock),
		productCommand.setCategory(category),
	); err != nil {
		return AddProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// Name returns the product's display name.
func (c AddProductCommand) Name() string {
	return c.name
}

// PriceCents returns the unit price in cents.
func (c AddProductCommand) PriceCents() int64 {
	return c.priceCents
}

// Stock returns the initial stock on hand.
func (c AddProductCommand) Stock() int {
	return c.stock
}

// Category returns the product category.
func (c AddProductCommand) Category() product.Category {
	return c.category
}

func (c *AddProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddProductCommand) setPriceCents(priceCents int64) error {
	if priceCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", priceCents))
	}

	c.priceCents = priceCents
	return nil
}

func (c *AddProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}

	c.stock = stock
	return nil
}

func (c *AddProductCommand) setCategory(category product.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

package product

import (
	"errors"
	"fmt"

	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is returned by Reserve when the requested quantity
	// exceeds the stock on hand. The product is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is the catalog aggregate: a sellable item with a unit price and a
// stock counter. Stock is mutated only through Reserve and Release so the
// counter can never go negative.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromCents(2500)
//	p, err := product.NewProduct(kernel.NewUUID(), "Whole Roast Chicken", price, 30, product.CategoryRoast)
//	if err != nil {
//	    // handle validation error
//	}
//	if err := p.Reserve(2); errors.Is(err, product.ErrInsufficientStock) {
//	    // reject the order line
//	}
type Product struct {
	id       kernel.UUID
	name     string
	price    kernel.Money
	stock    int
	category Category

	isConstructed bool
}

// NewProduct creates a validated Product. Stock must be non-negative.
func NewProduct(id kernel.UUID, name string, price kernel.Money, stock int, category Category) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence. It applies the
// same validation as NewProduct.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money, stock int, category Category) (*Product, error) {
	return NewProduct(id, name, price, stock, category)
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the quantity on hand.
func (p *Product) Stock() int {
	return p.stock
}

// Category returns the product's category.
func (p *Product) Category() Category {
	return p.category
}

// Reserve decrements stock by quantity to hold inventory against an order.
// Fails with ErrInsufficientStock when quantity exceeds the stock on hand,
// leaving the counter untouched.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > p.stock {
		return fmt.Errorf("%w: product %s has %d, requested %d",
			ErrInsufficientStock, p.id, p.stock, quantity)
	}

	p.stock -= quantity
	return nil
}

// Release restores previously reserved stock. It increments unconditionally;
// the exact-reversal property of cancellation relies on callers releasing
// the same product/quantity pairs they reserved.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}

// ChangePrice sets a new unit price. Existing order totals are unaffected:
// totals are computed once at order creation.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

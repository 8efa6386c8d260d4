package product

import (
	"fmt"

	"galeteria/internal/pkg/errs"
)

// Category classifies a catalog product.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryRoast is a roasted chicken dish.
	CategoryRoast

	// CategoryCombo is a bundled meal with a drink.
	CategoryCombo

	// CategoryMealbox is a packed take-away meal.
	CategoryMealbox
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "Unknown",
		CategoryRoast:   "roast",
		CategoryCombo:   "combo",
		CategoryMealbox: "mealbox",
	}
}

// CategoryFromString parses a category from its wire form.
func CategoryFromString(s string) (Category, error) {
	for c, str := range getCategoryStrings() {
		if c != CategoryUnknown && str == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks that the category is one of the defined values.
func (c Category) Validate() error {
	if c != CategoryRoast && c != CategoryCombo && c != CategoryMealbox {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the wire form of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

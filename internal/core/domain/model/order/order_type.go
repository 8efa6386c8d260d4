package order

import (
	"fmt"

	"galeteria/internal/pkg/errs"
)

// Type determines which transition branch and payment rule an order follows.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeDelivery is an order carried to the client; it owns a Delivery record.
	TypeDelivery

	// TypePickup is an order the client collects at the counter.
	TypePickup

	// TypeTab is a dine-in order settled when it is marked ready.
	TypeTab
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "Unknown",
		TypeDelivery: "delivery",
		TypePickup:   "pickup",
		TypeTab:      "tab",
	}
}

// TypeFromString parses an order type from its wire form.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("order type",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks that the type is one of the defined values.
func (t Type) Validate() error {
	if t != TypeDelivery && t != TypePickup && t != TypeTab {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire form of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Package kernel contains the shared value objects of the domain model:
// UUID identity for catalog and directory entities and Money for prices
// and order totals. Value objects are immutable; their zero values are
// invalid and fail Validate until built through a constructor function.
package kernel

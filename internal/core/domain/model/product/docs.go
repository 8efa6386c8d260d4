// Package product contains the Product aggregate of the catalog.
// A product carries its unit price and the stock counter the order engine
// reserves against. The stock-never-negative invariant is owned here:
// Reserve is the only way stock goes down and it refuses to underflow.
package product

package domain

import (
	"fmt"
	"math"
)

// Bakery is a producer of baked goods, identified by a unique name.
type Bakery struct {
	// ID is assigned by the store on insertion and never reused.
	ID int64

	// Name is unique across all bakeries.
	Name string
}

// Validate checks that the bakery can be written to a store.
func (b *Bakery) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: bakery name is required", ErrInvalidInput)
	}
	return nil
}

// BakedGood is a product sold by exactly one Bakery.
type BakedGood struct {
	// ID is assigned by the store on insertion and never reused.
	ID int64

	// Name is unique across all baked goods.
	Name string

	// Price carries no currency or precision constraint.
	Price float64

	// BakeryID references the owning Bakery.
	// Existence is checked by the store, not by services.
	BakeryID int64
}

// Validate checks that the baked good can be written to a store.
// Non-finite prices are rejected because they have no JSON representation.
func (g *BakedGood) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("%w: baked good name is required", ErrInvalidInput)
	}
	if math.IsNaN(g.Price) || math.IsInf(g.Price, 0) {
		return fmt.Errorf("%w: price must be a finite number", ErrInvalidInput)
	}
	return nil
}

package quantity

import (
	"github.com/thangamsteels/storefront/internal/models"
)

// Valid reports whether q lies on the product's order sequence,
// i.e. q >= MOQ and (q - MOQ) is a multiple of the increment.
func Valid(p models.Product, q int) bool {
	if q < p.MOQ {
		return false
	}
	return (q-p.MOQ)%p.Increment == 0
}

// Snap rounds a raw entered value onto the nearest point of the order
// sequence. Values at or below MOQ clamp to MOQ.
func Snap(p models.Product, raw int) int {
	if raw <= p.MOQ {
		return p.MOQ
	}
	steps := (raw - p.MOQ + p.Increment/2) / p.Increment
	return p.MOQ + steps*p.Increment
}

// Next is one increment step up. No upper bound is enforced here.
func Next(p models.Product, q int) int {
	return q + p.Increment
}

// Prev is one increment step down, never below MOQ.
func Prev(p models.Product, q int) int {
	if q-p.Increment < p.MOQ {
		return p.MOQ
	}
	return q - p.Increment
}

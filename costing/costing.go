// Package costing computes dish costs from ingredient quantities plus a labor
// percentage, and derives sale margins for reporting.
package costing

import (
	"errors"

	"rotiseria-api/models"
)

var (
	// ErrLaborPercentage is returned when the labor percentage is outside [0,100]
	ErrLaborPercentage = errors.New("labor percentage must be between 0 and 100")
	// ErrNoCostSource is returned when neither a manual cost nor a usable
	// ingredient line was supplied
	ErrNoCostSource = errors.New("cannot determine cost: supply a manual total cost or at least one ingredient")
)

// Line is one (ingredient, quantity) pair with its frozen subtotal
type Line struct {
	IngredientID uint
	Quantity     float64
	Subtotal     float64
}

// Valid reports whether the line can contribute to a cost
func (l Line) Valid() bool {
	return l.IngredientID > 0 && l.Quantity > 0
}

// TotalCost computes a dish's total cost. A positive manualCost takes
// precedence over the ingredient roll-up; otherwise the cost is the sum of
// valid line subtotals scaled by the labor percentage:
//
//	total = sum(subtotal_i) * (1 + laborPct/100)
//
// The labor percentage is validated first, so an out-of-range value is
// rejected even when a manual cost is present.
func TotalCost(lines []Line, laborPct, manualCost float64) (float64, error) {
	if laborPct < 0 || laborPct > 100 {
		return 0, ErrLaborPercentage
	}
	if manualCost > 0 {
		return manualCost, nil
	}

	var sum float64
	counted := 0
	for _, l := range lines {
		if !l.Valid() {
			continue
		}
		sum += l.Subtotal
		counted++
	}
	if counted == 0 {
		return 0, ErrNoCostSource
	}
	return sum * (1 + laborPct/100), nil
}

// Margin returns the sale margin as a percentage of the sale price.
// A non-positive price yields 0 rather than a division error.
func Margin(salePrice, totalCost float64) float64 {
	if salePrice <= 0 {
		return 0
	}
	return (salePrice - totalCost) / salePrice * 100
}

// AverageMargin returns the mean margin across a dish set, 0 for the empty set
func AverageMargin(dishes []models.Dish) float64 {
	if len(dishes) == 0 {
		return 0
	}
	var sum float64
	for _, d := range dishes {
		sum += Margin(d.SalePrice, d.TotalCost)
	}
	return sum / float64(len(dishes))
}

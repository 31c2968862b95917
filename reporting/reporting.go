// Package reporting aggregates revenue and profit figures across the dish
// catalog for the admin panel.
package reporting

import (
	"sort"

	"rotiseria-api/costing"
	"rotiseria-api/models"
)

// NoData is the top-dish label when the catalog is empty
const NoData = "no data"

// Row is the profit breakdown for a single dish
type Row struct {
	Dish      string  `json:"dish"`
	Cost      float64 `json:"cost"`
	Price     float64 `json:"price"`
	Profit    float64 `json:"profit"`
	MarginPct float64 `json:"margin_pct"`
}

// Summary aggregates the profit report. All fields are zero and TopDish is
// the NoData sentinel when the input is empty.
type Summary struct {
	Rows          []Row   `json:"rows"`
	TotalSales    float64 `json:"total_sales"`
	TotalProfit   float64 `json:"total_profit"`
	AverageMargin float64 `json:"average_margin_pct"`
	TopDish       string  `json:"top_dish"`
	DishCount     int     `json:"dish_count"`
}

// ProfitReport builds the per-dish profit breakdown and its aggregates.
// Unavailable dishes are included: a disabled dish still carries realized
// profit from past orders. Rows are sorted by profit descending so the top
// dish is deterministic; ties break by dish name.
func ProfitReport(dishes []models.Dish) Summary {
	s := Summary{Rows: []Row{}, TopDish: NoData}
	if len(dishes) == 0 {
		return s
	}

	for _, d := range dishes {
		profit := d.SalePrice - d.TotalCost
		s.Rows = append(s.Rows, Row{
			Dish:      d.Name,
			Cost:      d.TotalCost,
			Price:     d.SalePrice,
			Profit:    profit,
			MarginPct: costing.Margin(d.SalePrice, d.TotalCost),
		})
		s.TotalSales += d.SalePrice
		s.TotalProfit += profit
	}

	sort.SliceStable(s.Rows, func(i, j int) bool {
		if s.Rows[i].Profit != s.Rows[j].Profit {
			return s.Rows[i].Profit > s.Rows[j].Profit
		}
		return s.Rows[i].Dish < s.Rows[j].Dish
	})

	s.TopDish = s.Rows[0].Dish
	s.AverageMargin = costing.AverageMargin(dishes)
	s.DishCount = len(dishes)
	return s
}

// IngredientCost is one line of the ingredient cost report
type IngredientCost struct {
	Ingredient string  `json:"ingredient"`
	UnitCost   float64 `json:"unit_cost"`
	Unit       string  `json:"unit"`
}

// IngredientCosts lists every ingredient with its unit cost and measure.
// Expects MeasurementUnit preloaded.
func IngredientCosts(ingredients []models.Ingredient) []IngredientCost {
	out := make([]IngredientCost, 0, len(ingredients))
	for _, i := range ingredients {
		out = append(out, IngredientCost{
			Ingredient: i.Name,
			UnitCost:   i.UnitCost,
			Unit:       i.MeasurementUnit.Name,
		})
	}
	return out
}

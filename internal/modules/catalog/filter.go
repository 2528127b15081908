package catalog

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Default slider bounds of the shop's price filter.
var (
	DefaultMinPrice = decimal.Zero
	DefaultMaxPrice = decimal.NewFromInt(10)
	PriceStep       = decimal.NewFromFloat(0.5)
)

// PriceRange is an inclusive [Min, Max] price window. Min <= Max.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Min) && price.LessThanOrEqual(r.Max)
}

// FilterState is the combination of search term, price window and facet
// selections applied to the catalog. An empty selection set places no
// restriction on its dimension.
type FilterState struct {
	SearchTerm string     `json:"search_term"`
	PriceRange PriceRange `json:"price_range"`
	Categories []Category `json:"categories"`
	Flavors    []string   `json:"flavors"`
	UseCases   []UseCase  `json:"use_cases"`
}

// DefaultFilterState is the state the shop opens with and returns to on reset.
func DefaultFilterState() FilterState {
	return FilterState{
		PriceRange: PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice},
		Categories: []Category{},
		Flavors:    []string{},
		UseCases:   []UseCase{},
	}
}

// DefaultFilterStateFor is DefaultFilterState with the price window spanning
// the cheapest and most expensive product of products.
func DefaultFilterStateFor(products []Product) FilterState {
	state := DefaultFilterState()
	if len(products) == 0 {
		return state
	}
	lo, hi := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		lo = decimal.Min(lo, p.Price)
		hi = decimal.Max(hi, p.Price)
	}
	state.PriceRange = PriceRange{Min: lo, Max: hi}
	return state
}

// Reset discards every selection and restores the default price window.
func (s FilterState) Reset() FilterState {
	return DefaultFilterState()
}

// Active reports whether s narrows the catalog beyond the default state.
func (s FilterState) Active() bool {
	def := DefaultFilterState()
	return s.SearchTerm != "" ||
		!s.PriceRange.Min.Equal(def.PriceRange.Min) ||
		!s.PriceRange.Max.Equal(def.PriceRange.Max) ||
		len(s.Categories) > 0 ||
		len(s.Flavors) > 0 ||
		len(s.UseCases) > 0
}

// Matches applies every predicate of s to p. The search term is matched as
// given, whitespace included.
func (s FilterState) Matches(p Product) bool {
	if s.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(s.SearchTerm)) {
		return false
	}
	if !s.PriceRange.Contains(p.Price) {
		return false
	}
	if len(s.Categories) > 0 && !slices.Contains(s.Categories, p.Category) {
		return false
	}
	if len(s.Flavors) > 0 && !slices.Contains(s.Flavors, p.Flavor) {
		return false
	}
	if len(s.UseCases) > 0 && !slices.Contains(s.UseCases, p.UseCase) {
		return false
	}
	return true
}

// Filter returns the products matching state in their original order.
// The result is never nil; no match yields an empty slice.
func Filter(products []Product, state FilterState) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if state.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Result is a filtered listing. Filtered distinguishes "nothing matched"
// from "nothing was asked for".
type Result struct {
	Products []Product   `json:"products"`
	Total    int         `json:"total"`
	Filtered bool        `json:"filtered"`
	State    FilterState `json:"state"`
}

// Empty reports whether the filters ruled out every product.
func (r Result) Empty() bool { return len(r.Products) == 0 }

package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func priceRange(min, max string) PriceRange {
	return PriceRange{Min: decimal.RequireFromString(min), Max: decimal.RequireFromString(max)}
}

// sampleStates covers every dimension on its own and in combination.
func sampleStates() map[string]FilterState {
	with := func(fn func(*FilterState)) FilterState {
		s := DefaultFilterState()
		fn(&s)
		return s
	}
	return map[string]FilterState{
		"default":    DefaultFilterState(),
		"search":     with(func(s *FilterState) { s.SearchTerm = "neutron" }),
		"price":      with(func(s *FilterState) { s.PriceRange = priceRange("4.49", "4.99") }),
		"narrow":     with(func(s *FilterState) { s.PriceRange = priceRange("5", "5.2") }),
		"category":   with(func(s *FilterState) { s.Categories = []Category{CategoryElectron, CategoryProton} }),
		"flavor":     with(func(s *FilterState) { s.Flavors = []string{"berry"} }),
		"use case":   with(func(s *FilterState) { s.UseCases = []UseCase{UseCaseRecovery} }),
		"no match":   with(func(s *FilterState) { s.SearchTerm = "cola" }),
		"combined": with(func(s *FilterState) {
			s.SearchTerm = "e"
			s.PriceRange = priceRange("4", "5.49")
			s.Flavors = []string{"berry", "grape"}
			s.UseCases = []UseCase{UseCasePreWorkout, UseCaseRecovery}
		}),
	}
}

func TestFilterDefaultReturnsWholeCatalog(t *testing.T) {
	products := Seed()
	got := Filter(products, DefaultFilterState())
	assert.Equal(t, ids(products), ids(got))
	assert.Equal(t, ids(products), ids(Filter(products, FilterState{}.Reset())))
}

func TestFilterProperties(t *testing.T) {
	products := Seed()
	for name, state := range sampleStates() {
		t.Run(name, func(t *testing.T) {
			got := Filter(products, state)
			require.NotNil(t, got)

			for _, p := range got {
				assert.True(t, state.PriceRange.Contains(p.Price), "price of %d", p.ID)
				if len(state.Categories) > 0 {
					assert.Contains(t, state.Categories, p.Category)
				}
				if len(state.Flavors) > 0 {
					assert.Contains(t, state.Flavors, p.Flavor)
				}
				if len(state.UseCases) > 0 {
					assert.Contains(t, state.UseCases, p.UseCase)
				}
			}

			// Results form a subsequence of the catalog.
			pos := 0
			for _, p := range got {
				for pos < len(products) && products[pos].ID != p.ID {
					pos++
				}
				require.Less(t, pos, len(products), "product %d out of order", p.ID)
				pos++
			}

			assert.Equal(t, ids(got), ids(Filter(got, state)), "filter must be idempotent")
		})
	}
}

func TestFilterPriceAndCategory(t *testing.T) {
	state := DefaultFilterState()
	state.PriceRange = priceRange("4.49", "4.99")
	state.Categories = []Category{CategoryProton}

	got := Filter(Seed(), state)

	assert.Equal(t, []int{1, 2}, ids(got))
}

func TestFilterPriceBoundsAreInclusive(t *testing.T) {
	state := DefaultFilterState()
	state.PriceRange = priceRange("4.49", "4.49")

	assert.Equal(t, []int{3, 4}, ids(Filter(Seed(), state)))
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	for _, term := range []string{"Recover", "recover", "RECOVER"} {
		state := DefaultFilterState()
		state.SearchTerm = term

		got := Filter(Seed(), state)

		require.Len(t, got, 1, term)
		assert.Equal(t, "Electron Recover", got[0].Name)
	}
}

func TestFilterSearchKeepsWhitespace(t *testing.T) {
	state := DefaultFilterState()
	state.SearchTerm = "Surge "
	assert.Empty(t, Filter(Seed(), state))
	assert.True(t, state.Active())

	state.SearchTerm = "  Recover "
	assert.Empty(t, Filter(Seed(), state))

	state.SearchTerm = "citrus surge"
	assert.Equal(t, []int{1}, ids(Filter(Seed(), state)))

	state.SearchTerm = " "
	assert.True(t, state.Active())
	assert.Empty(t, Filter(Seed(), state))
}

func TestFilterEmptyResult(t *testing.T) {
	state := DefaultFilterState()
	state.Categories = []Category{CategoryNeutron}
	state.UseCases = []UseCase{UseCaseRecovery}

	got := Filter(Seed(), state)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.True(t, state.Active())
}

func TestResetRestoresDefaults(t *testing.T) {
	state := FilterState{
		SearchTerm: "blast",
		PriceRange: priceRange("1", "2"),
		Categories: []Category{CategoryProton},
		Flavors:    []string{"berry"},
		UseCases:   []UseCase{UseCasePreWorkout},
	}

	reset := state.Reset()

	assert.Equal(t, DefaultFilterState(), reset)
	assert.False(t, reset.Active())
	assert.True(t, reset.PriceRange.Min.Equal(decimal.Zero))
	assert.True(t, reset.PriceRange.Max.Equal(decimal.NewFromInt(10)))
}

func TestDefaultFilterStateFor(t *testing.T) {
	state := DefaultFilterStateFor(Seed())
	assert.Equal(t, "4.49", state.PriceRange.Min.String())
	assert.Equal(t, "5.49", state.PriceRange.Max.String())
	assert.Len(t, Filter(Seed(), state), 6)

	assert.Equal(t, DefaultFilterState(), DefaultFilterStateFor(nil))
}

func TestDisplayPrice(t *testing.T) {
	p := Product{Price: decimal.RequireFromString("5.5")}
	assert.Equal(t, "$5.50", p.DisplayPrice())
}

package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Option is a selectable facet value with its display label.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// PriceSlider describes the price range control.
type PriceSlider struct {
	Min  decimal.Decimal `json:"min"`
	Max  decimal.Decimal `json:"max"`
	Step decimal.Decimal `json:"step"`
}

// Facets is everything the filter panel needs to render its controls.
type Facets struct {
	Categories []Option    `json:"categories"`
	Flavors    []Option    `json:"flavors"`
	UseCases   []Option    `json:"use_cases"`
	Price      PriceSlider `json:"price"`
	Defaults   FilterState `json:"defaults"`
}

var categoryLabels = map[Category]string{
	CategoryProton:   "Proton",
	CategoryNeutron:  "Neutron",
	CategoryElectron: "Electron",
}

var useCaseLabels = map[UseCase]string{
	UseCasePreWorkout:    "Pre-Workout",
	UseCaseDuringWorkout: "During Workout",
	UseCaseRecovery:      "Recovery",
}

// flavorOrder is the order of the shop's flavor checkboxes. Flavors found
// in the catalog but not listed here are appended in catalog order.
var flavorOrder = []string{"citrus", "berry", "tropical", "watermelon", "grape"}

// BuildFacets derives the filter panel options from products.
func BuildFacets(products []Product) Facets {
	f := Facets{
		Categories: make([]Option, 0, len(Categories)),
		UseCases:   make([]Option, 0, len(UseCases)),
		Price: PriceSlider{
			Min:  DefaultMinPrice,
			Max:  DefaultMaxPrice,
			Step: PriceStep,
		},
		Defaults: DefaultFilterState(),
	}
	for _, c := range Categories {
		f.Categories = append(f.Categories, Option{ID: string(c), Label: categoryLabels[c]})
	}
	for _, u := range UseCases {
		f.UseCases = append(f.UseCases, Option{ID: string(u), Label: useCaseLabels[u]})
	}

	flavors := append([]string(nil), flavorOrder...)
	for _, p := range products {
		flavors = appendUnique(flavors, p.Flavor)
	}
	f.Flavors = make([]Option, 0, len(flavors))
	for _, fl := range flavors {
		f.Flavors = append(f.Flavors, Option{ID: fl, Label: titleCase(fl)})
	}
	return f
}

// FeaturedPerGroup is how many products each home page line shows.
const FeaturedPerGroup = 3

// homeLineup fills the home page lines with products the shop does not
// list yet.
var homeLineup = []Product{
	{
		ID:          7,
		Name:        "Proton Tropical Rush",
		Description: "Pre-workout energy boost with caffeine",
		Price:       decimal.RequireFromString("4.99"),
		Image:       "/proton-tropical.png",
		Category:    CategoryProton,
		Flavor:      "tropical",
		UseCase:     UseCasePreWorkout,
	},
	{
		ID:          8,
		Name:        "Neutron Power Mix",
		Description: "Sustained energy for long sessions",
		Price:       decimal.RequireFromString("4.49"),
		Image:       "/neutron-power.png",
		Category:    CategoryNeutron,
		UseCase:     UseCaseDuringWorkout,
	},
	{
		ID:          9,
		Name:        "Electron Recharge",
		Description: "Post-workout recovery with antioxidants",
		Price:       decimal.RequireFromString("5.49"),
		Image:       "/electron-recharge.png",
		Category:    CategoryElectron,
		UseCase:     UseCaseRecovery,
	},
}

// FeaturedGroup is one product line on the home page.
type FeaturedGroup struct {
	Category Category  `json:"category"`
	Label    string    `json:"label"`
	Products []Product `json:"products"`
}

// Lineup is the home page's tabbed product strip. Active is the tab it
// opens on.
type Lineup struct {
	Active Category        `json:"active"`
	Groups []FeaturedGroup `json:"groups"`
}

// Featured groups products by category, catalog order first, then tops
// each group up to FeaturedPerGroup from the home-only lineup. Categories
// left without products are omitted.
func Featured(products []Product) Lineup {
	l := Lineup{Groups: make([]FeaturedGroup, 0, len(Categories))}
	for _, c := range Categories {
		g := FeaturedGroup{Category: c, Label: categoryLabels[c]}
		names := map[string]bool{}
		for _, p := range append(append([]Product(nil), products...), homeLineup...) {
			if p.Category != c || names[p.Name] || len(g.Products) == FeaturedPerGroup {
				continue
			}
			names[p.Name] = true
			g.Products = append(g.Products, p.clone())
		}
		if len(g.Products) > 0 {
			l.Groups = append(l.Groups, g)
		}
	}
	if len(l.Groups) > 0 {
		l.Active = l.Groups[0].Category
	}
	return l
}

// inLineup reports whether id is a home-only product.
func inLineup(id int) bool {
	for _, p := range homeLineup {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ToggleFavorite returns a copy of favorites with id added, or removed if
// it was already present.
func ToggleFavorite(favorites []int, id int) []int {
	out := make([]int, 0, len(favorites)+1)
	found := false
	for _, f := range favorites {
		if f == id {
			found = true
			continue
		}
		out = append(out, f)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

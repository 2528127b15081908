package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")

// Category is a Zenith Zap product line.
type Category string

const (
	CategoryProton   Category = "proton"
	CategoryNeutron  Category = "neutron"
	CategoryElectron Category = "electron"
)

// Categories lists every product line in display order.
var Categories = []Category{CategoryProton, CategoryNeutron, CategoryElectron}

func (c Category) Valid() bool {
	switch c {
	case CategoryProton, CategoryNeutron, CategoryElectron:
		return true
	}
	return false
}

// UseCase tags when a product is meant to be consumed.
type UseCase string

const (
	UseCasePreWorkout    UseCase = "pre-workout"
	UseCaseDuringWorkout UseCase = "during-workout"
	UseCaseRecovery      UseCase = "recovery"
)

// UseCases lists every use-case tag in display order.
var UseCases = []UseCase{UseCasePreWorkout, UseCaseDuringWorkout, UseCaseRecovery}

func (u UseCase) Valid() bool {
	switch u {
	case UseCasePreWorkout, UseCaseDuringWorkout, UseCaseRecovery:
		return true
	}
	return false
}

// Nutrient is one line of a product's nutrition facts.
type Nutrient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Product is a catalog entry. Products are seeded once and never mutated.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    Category        `json:"category"`
	Flavor      string          `json:"flavor"`
	UseCase     UseCase         `json:"use_case"`
	Nutrients   []Nutrient      `json:"nutrients,omitempty"`
}

// DisplayPrice renders the price the way the shop shows it, e.g. "$4.99".
func (p Product) DisplayPrice() string {
	return "$" + p.Price.StringFixed(2)
}

func (p Product) clone() Product {
	if p.Nutrients != nil {
		p.Nutrients = append([]Nutrient(nil), p.Nutrients...)
	}
	return p
}

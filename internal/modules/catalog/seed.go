package catalog

import "github.com/shopspring/decimal"

// Seed returns the storefront catalog in shop order.
func Seed() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Proton Citrus Surge",
			Description: "Pre-workout energy boost with electrolytes",
			Price:       decimal.RequireFromString("4.99"),
			Image:       "/proton-citrus.png",
			Category:    CategoryProton,
			Flavor:      "citrus",
			UseCase:     UseCasePreWorkout,
			Nutrients: []Nutrient{
				{Name: "Calories", Amount: "10 kcal"},
				{Name: "Carbohydrates", Amount: "2g"},
				{Name: "Sodium", Amount: "100mg"},
				{Name: "Potassium", Amount: "80mg"},
				{Name: "Vitamin B6", Amount: "2mg"},
				{Name: "Vitamin B12", Amount: "6µg"},
				{Name: "Caffeine", Amount: "80mg"},
			},
		},
		{
			ID:          2,
			Name:        "Proton Berry Blast",
			Description: "Pre-workout energy boost with B vitamins",
			Price:       decimal.RequireFromString("4.99"),
			Image:       "/proton-berry.png",
			Category:    CategoryProton,
			Flavor:      "berry",
			UseCase:     UseCasePreWorkout,
		},
		{
			ID:          3,
			Name:        "Neutron Steady Flow",
			Description: "Sustained energy with complex carbs",
			Price:       decimal.RequireFromString("4.49"),
			Image:       "/neutron-steady.png",
			Category:    CategoryNeutron,
			Flavor:      "watermelon",
			UseCase:     UseCaseDuringWorkout,
		},
		{
			ID:          4,
			Name:        "Neutron Endurance",
			Description: "Mid-workout hydration with minerals",
			Price:       decimal.RequireFromString("4.49"),
			Image:       "/neutron-endurance.png",
			Category:    CategoryNeutron,
			Flavor:      "grape",
			UseCase:     UseCaseDuringWorkout,
			Nutrients: []Nutrient{
				{Name: "Calories", Amount: "25 kcal"},
				{Name: "Carbohydrates", Amount: "6g"},
				{Name: "Sodium", Amount: "150mg"},
				{Name: "Potassium", Amount: "100mg"},
				{Name: "Magnesium", Amount: "40mg"},
				{Name: "Calcium", Amount: "40mg"},
				{Name: "BCAAs", Amount: "2g"},
			},
		},
		{
			ID:          5,
			Name:        "Electron Recover",
			Description: "Post-workout recovery with protein",
			Price:       decimal.RequireFromString("5.49"),
			Image:       "/electron-recover.png",
			Category:    CategoryElectron,
			Flavor:      "tropical",
			UseCase:     UseCaseRecovery,
			Nutrients: []Nutrient{
				{Name: "Calories", Amount: "120 kcal"},
				{Name: "Protein", Amount: "20g"},
				{Name: "Carbohydrates", Amount: "10g"},
				{Name: "Sodium", Amount: "120mg"},
				{Name: "Potassium", Amount: "250mg"},
				{Name: "Glutamine", Amount: "5g"},
				{Name: "Antioxidants", Amount: "200mg"},
			},
		},
		{
			ID:          6,
			Name:        "Electron Rebuild",
			Description: "Post-workout recovery with amino acids",
			Price:       decimal.RequireFromString("5.49"),
			Image:       "/electron-rebuild.png",
			Category:    CategoryElectron,
			Flavor:      "berry",
			UseCase:     UseCaseRecovery,
		},
	}
}

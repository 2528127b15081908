package dashboard

import (
	"github.com/georgemunganga/zenith-zap/internal/modules/catalog"
	"github.com/shopspring/decimal"
)

var playerTabs = []Tab{
	{ID: "today", Label: "Today"},
	{ID: "week", Label: "This Week"},
	{ID: "month", Label: "This Month"},
}

var coachTabs = []Tab{
	{ID: "hydration", Label: "Hydration Levels"},
	{ID: "consumption", Label: "Consumption Data"},
	{ID: "performance", Label: "Performance Impact"},
}

var todayPlan = []PlanStep{
	{Title: "Morning Workout", Detail: "Basketball training - High intensity", Serving: "500ml Proton Citrus Surge"},
	{Title: "During Practice", Detail: "2 hour team practice", Serving: "750ml Neutron Endurance", Note: "Sip every 15-20 min"},
	{Title: "Post-Workout", Detail: "Recovery period", Serving: "500ml Electron Recover"},
}

var placeholders = map[string]string{
	"week":        "Weekly hydration plan chart will display here",
	"month":       "Monthly hydration plan chart will display here",
	"hydration":   "Team hydration levels chart will display here",
	"consumption": "Consumption data chart will display here",
	"performance": "Performance impact chart will display here",
}

// playerPicks references catalog products by id; prices come from the catalog.
var playerPicks = []struct {
	productID int
	reason    string
}{
	{2, "Perfect for your morning workouts"},
	{4, "Based on your training intensity"},
	{5, "Optimal for post-basketball recovery"},
}

func mockPlayer() Player {
	return Player{
		Name:      "Alex Thompson",
		Email:     "alex@example.com",
		Sport:     "Basketball",
		Age:       24,
		Intensity: "High",
		Diet:      "Balanced",
		Stats: PlayerStats{
			HydrationLevel:    75,
			WorkoutsThisWeek:  4,
			WorkoutGoal:       6,
			AvgHydrationLevel: 72,
			FavoriteDrink:     "Proton Berry Blast",
		},
		RecentOrders: []Order{
			{ID: "#1234", Date: "2025-05-02", Status: "Delivered", Total: decimal.RequireFromString("29.97")},
			{ID: "#1201", Date: "2025-04-15", Status: "Delivered", Total: decimal.RequireFromString("49.94")},
		},
	}
}

func mockCoach() Coach {
	return Coach{
		Name:    "Coach Sarah Miller",
		Email:   "sarah@example.com",
		Sport:   "Basketball",
		Team:    "Phoenix Risers",
		Players: 12,
		TeamStats: TeamStats{
			AverageHydration: 68,
			TopPerformer:     "Michael K.",
			NeedsAttention:   []string{"Jason T.", "Emma R."},
		},
		Recommendations: []Advice{
			{
				Title: "Pre-Game Protocol",
				Body: "Based on recent performance data, implementing a standardized pre-game hydration protocol " +
					"(2 hours before game time) has shown to improve team performance by 12%.",
			},
			{
				Title: "Practice Hydration Stations",
				Body: "Adding additional hydration stations during practices and implementing structured " +
					"hydration breaks every 20 minutes is recommended.",
			},
		},
		BulkPacks: []BulkPack{
			{Name: "Team Pack: Proton Series", Category: catalog.CategoryProton, Bottles: 24, Price: decimal.RequireFromString("99.99")},
			{Name: "Team Pack: Neutron Series", Category: catalog.CategoryNeutron, Bottles: 24, Price: decimal.RequireFromString("89.99")},
		},
		RecentOrders: []Order{
			{ID: "#1298", Date: "2025-05-03", Status: "Processing", Total: decimal.RequireFromString("129.85")},
			{ID: "#1185", Date: "2025-04-10", Status: "Delivered", Total: decimal.RequireFromString("149.70")},
		},
	}
}

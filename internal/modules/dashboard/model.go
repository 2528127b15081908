package dashboard

import (
	"errors"

	"github.com/georgemunganga/zenith-zap/internal/modules/catalog"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownRole = errors.New("unknown dashboard role")
	ErrUnknownTab  = errors.New("unknown dashboard tab")
)

type Role string

const (
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
)

// Tab is one entry of a tab strip.
type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Tabs is a tab strip with one active entry.
type Tabs struct {
	Items  []Tab  `json:"items"`
	Active string `json:"active"`
}

// Select activates id. It fails with ErrUnknownTab if id is not in the strip.
func (t Tabs) Select(id string) (Tabs, error) {
	for _, it := range t.Items {
		if it.ID == id {
			t.Active = id
			return t, nil
		}
	}
	return t, ErrUnknownTab
}

type Order struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"`
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
}

// PlanStep is one drink slot of the player's hydration plan.
type PlanStep struct {
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	Serving string `json:"serving"`
	Note    string `json:"note,omitempty"`
}

// Recommendation pairs a catalog product with the reason it is suggested.
type Recommendation struct {
	Product catalog.Product `json:"product"`
	Reason  string          `json:"reason"`
}

type PlayerStats struct {
	HydrationLevel    int    `json:"hydration_level"`
	WorkoutsThisWeek  int    `json:"workouts_this_week"`
	WorkoutGoal       int    `json:"workout_goal"`
	AvgHydrationLevel int    `json:"avg_hydration_level"`
	FavoriteDrink     string `json:"favorite_drink"`
}

type Player struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Sport           string           `json:"sport"`
	Age             int              `json:"age"`
	Intensity       string           `json:"intensity"`
	Diet            string           `json:"diet"`
	Stats           PlayerStats      `json:"stats"`
	Tabs            Tabs             `json:"tabs"`
	Plan            []PlanStep       `json:"plan,omitempty"`
	Placeholder     string           `json:"placeholder,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
	RecentOrders    []Order          `json:"recent_orders"`
}

type TeamStats struct {
	AverageHydration int      `json:"average_hydration"`
	TopPerformer     string   `json:"top_performer"`
	NeedsAttention   []string `json:"needs_attention"`
}

type Advice struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// BulkPack is a team-sized product bundle.
type BulkPack struct {
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	Bottles  int              `json:"bottles"`
	Price    decimal.Decimal  `json:"price"`
}

type Coach struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Sport           string     `json:"sport"`
	Team            string     `json:"team"`
	Players         int        `json:"players"`
	TeamStats       TeamStats  `json:"team_stats"`
	Tabs            Tabs       `json:"tabs"`
	Placeholder     string     `json:"placeholder,omitempty"`
	Recommendations []Advice   `json:"recommendations"`
	BulkPacks       []BulkPack `json:"bulk_packs"`
	RecentOrders    []Order    `json:"recent_orders"`
}

// Header is the dashboard's top bar.
type Header struct {
	Name          string `json:"name"`
	Role          Role   `json:"role"`
	Notifications int    `json:"notifications"`
}

// View is the dashboard for one role. Exactly one of Player and Coach is set.
type View struct {
	Header Header  `json:"header"`
	Player *Player `json:"player,omitempty"`
	Coach  *Coach  `json:"coach,omitempty"`
}

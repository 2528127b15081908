package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/georgemunganga/zenith-zap/internal/modules/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(catalog.NewMemoryRepository(catalog.Seed()))
}

func TestPlayerViewDefaults(t *testing.T) {
	v, err := newTestService().View(context.Background(), "", "")
	require.NoError(t, err)

	require.NotNil(t, v.Player)
	assert.Nil(t, v.Coach)
	assert.Equal(t, Header{Name: "Alex Thompson", Role: RolePlayer, Notifications: 3}, v.Header)
	assert.Equal(t, "today", v.Player.Tabs.Active)
	assert.Len(t, v.Player.Plan, 3)
	assert.Empty(t, v.Player.Placeholder)

	require.Len(t, v.Player.Recommendations, 3)
	assert.Equal(t, "Proton Berry Blast", v.Player.Recommendations[0].Product.Name)
	assert.Equal(t, "$4.49", v.Player.Recommendations[1].Product.DisplayPrice())
}

func TestPlayerViewOtherTab(t *testing.T) {
	v, err := newTestService().View(context.Background(), RolePlayer, "week")
	require.NoError(t, err)

	assert.Equal(t, "week", v.Player.Tabs.Active)
	assert.Nil(t, v.Player.Plan)
	assert.Equal(t, "Weekly hydration plan chart will display here", v.Player.Placeholder)
}

func TestPlayerViewSkipsMissingProducts(t *testing.T) {
	svc := NewService(catalog.NewMemoryRepository(catalog.Seed()[:2]))

	v, err := svc.View(context.Background(), RolePlayer, "")
	require.NoError(t, err)

	require.Len(t, v.Player.Recommendations, 1)
	assert.Equal(t, 2, v.Player.Recommendations[0].Product.ID)
}

func TestCoachView(t *testing.T) {
	v, err := newTestService().View(context.Background(), RoleCoach, "performance")
	require.NoError(t, err)

	require.NotNil(t, v.Coach)
	assert.Nil(t, v.Player)
	assert.Equal(t, "performance", v.Coach.Tabs.Active)
	assert.Equal(t, "Performance impact chart will display here", v.Coach.Placeholder)
	assert.Equal(t, []string{"Jason T.", "Emma R."}, v.Coach.TeamStats.NeedsAttention)
	assert.Equal(t, "99.99", v.Coach.BulkPacks[0].Price.String())
}

func TestCoachViewPlaceholderFollowsTab(t *testing.T) {
	svc := newTestService()

	for tab, want := range map[string]string{
		"":            "Team hydration levels chart will display here",
		"consumption": "Consumption data chart will display here",
	} {
		v, err := svc.View(context.Background(), RoleCoach, tab)
		require.NoError(t, err)
		assert.Equal(t, want, v.Coach.Placeholder, tab)
	}
}

func TestViewErrors(t *testing.T) {
	svc := newTestService()

	_, err := svc.View(context.Background(), "fan", "")
	assert.True(t, errors.Is(err, ErrUnknownRole))

	_, err = svc.View(context.Background(), RoleCoach, "today")
	assert.True(t, errors.Is(err, ErrUnknownTab))
}

func TestTabsSelect(t *testing.T) {
	tabs := Tabs{Items: playerTabs, Active: "today"}

	next, err := tabs.Select("month")
	require.NoError(t, err)
	assert.Equal(t, "month", next.Active)
	assert.Equal(t, "today", tabs.Active)

	same, err := tabs.Select("yesterday")
	assert.ErrorIs(t, err, ErrUnknownTab)
	assert.Equal(t, "today", same.Active)
}

func TestDashboardHandler(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(newTestService()).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?role=coach", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var v View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	require.NotNil(t, v.Coach)
	assert.Equal(t, "Phoenix Risers", v.Coach.Team)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?role=player&tab=hydration", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgemunganga/zenith-zap/internal/modules/catalog"
)

// initialNotifications is the unread count the header starts with.
const initialNotifications = 3

// Service builds the mock dashboards.
type Service interface {
	View(ctx context.Context, role Role, tab string) (*View, error)
}

type service struct{ products catalog.Repository }

// NewService resolves recommended products through products.
func NewService(products catalog.Repository) Service { return &service{products: products} }

func (s *service) View(ctx context.Context, role Role, tab string) (*View, error) {
	switch role {
	case "", RolePlayer:
		return s.playerView(ctx, tab)
	case RoleCoach:
		return s.coachView(tab)
	default:
		return nil, fmt.Errorf("%q: %w", role, ErrUnknownRole)
	}
}

func (s *service) playerView(ctx context.Context, tab string) (*View, error) {
	p := mockPlayer()
	tabs, err := selectTab(playerTabs, tab)
	if err != nil {
		return nil, err
	}
	p.Tabs = tabs
	if tabs.Active == "today" {
		p.Plan = todayPlan
	} else {
		p.Placeholder = placeholders[tabs.Active]
	}

	for _, pick := range playerPicks {
		product, err := s.products.GetByID(ctx, pick.productID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		p.Recommendations = append(p.Recommendations, Recommendation{Product: *product, Reason: pick.reason})
	}

	return &View{
		Header: Header{Name: p.Name, Role: RolePlayer, Notifications: initialNotifications},
		Player: &p,
	}, nil
}

func (s *service) coachView(tab string) (*View, error) {
	c := mockCoach()
	tabs, err := selectTab(coachTabs, tab)
	if err != nil {
		return nil, err
	}
	c.Tabs = tabs
	c.Placeholder = placeholders[tabs.Active]
	return &View{
		Header: Header{Name: c.Name, Role: RoleCoach, Notifications: initialNotifications},
		Coach:  &c,
	}, nil
}

// selectTab activates tab, or the first tab when tab is empty.
func selectTab(items []Tab, tab string) (Tabs, error) {
	t := Tabs{Items: items, Active: items[0].ID}
	if tab == "" {
		return t, nil
	}
	t, err := t.Select(tab)
	if err != nil {
		return t, fmt.Errorf("%q: %w", tab, err)
	}
	return t, nil
}

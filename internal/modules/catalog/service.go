package catalog

import "context"

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context, state FilterState) (*Result, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	Facets(ctx context.Context) (*Facets, error)
	Featured(ctx context.Context) (*Lineup, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context, state FilterState) (*Result, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := Filter(products, state)
	return &Result{
		Products: matched,
		Total:    len(products),
		Filtered: state.Active(),
		State:    state,
	}, nil
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Facets(ctx context.Context) (*Facets, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	f := BuildFacets(products)
	return &f, nil
}

func (s *service) Featured(ctx context.Context) (*Lineup, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	l := Featured(products)
	return &l, nil
}

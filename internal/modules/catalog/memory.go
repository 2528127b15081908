package catalog

import (
	"context"
	"fmt"
)

type memoryRepo struct {
	products []Product
}

// NewMemoryRepository serves a private copy of products. Callers may reuse
// or mutate the slice they passed in without affecting the repository.
func NewMemoryRepository(products []Product) Repository {
	own := make([]Product, len(products))
	for i, p := range products {
		own[i] = p.clone()
	}
	return &memoryRepo{products: own}
}

func (r *memoryRepo) List(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Product, len(r.products))
	for i, p := range r.products {
		out[i] = p.clone()
	}
	return out, nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range r.products {
		if p.ID == id {
			c := p.clone()
			return &c, nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
}

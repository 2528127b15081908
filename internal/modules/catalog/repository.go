package catalog

import "context"

// Repository defines read access to the product catalog. The catalog is
// immutable for the lifetime of the process.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
}

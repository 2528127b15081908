package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// NewPostgresRepository reads the whole catalog from db once and serves it
// from memory afterwards.
func NewPostgresRepository(ctx context.Context, db *sql.DB) (Repository, error) {
	products, err := loadProducts(ctx, db)
	if err != nil {
		return nil, err
	}
	if err := loadNutrients(ctx, db, products); err != nil {
		return nil, err
	}
	return NewMemoryRepository(products), nil
}

func scanProduct(scan func(...interface{}) error) (Product, error) {
	var p Product
	var category, useCase string
	err := scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image,
		&category, &p.Flavor, &useCase)
	if err != nil {
		return Product{}, err
	}
	p.Category = Category(category)
	p.UseCase = UseCase(useCase)
	return p, nil
}

func loadProducts(ctx context.Context, db *sql.DB) ([]Product, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id,name,description,price,image,category,flavor,use_case
		FROM products ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func loadNutrients(ctx context.Context, db *sql.DB, products []Product) error {
	index := make(map[int]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}

	rows, err := db.QueryContext(ctx, `
		SELECT product_id,name,amount
		FROM product_nutrients ORDER BY product_id, position`)
	if err != nil {
		return fmt.Errorf("query nutrients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var n Nutrient
		if err := rows.Scan(&id, &n.Name, &n.Amount); err != nil {
			return fmt.Errorf("scan nutrient: %w", err)
		}
		if i, ok := index[id]; ok {
			products[i].Nutrients = append(products[i].Nutrients, n)
		}
	}
	return rows.Err()
}

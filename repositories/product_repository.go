package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"waco-shop/config"
	"waco-shop/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) GetAll(ctx context.Context, category string) ([]models.Product, error) {
	query := `SELECT id, code, name, content, category, base_price::text, image_url, created_at
	          FROM products`
	args := []interface{}{}
	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY id"

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) GetByCode(ctx context.Context, code string) (*models.Product, error) {
	query := `SELECT id, code, name, content, category, base_price::text, image_url, created_at
	          FROM products WHERE code = $1`

	var p models.Product
	var price string
	err := config.DB.QueryRow(ctx, query, code).Scan(
		&p.ID, &p.Code, &p.Name, &p.Content, &p.Category, &price, &p.ImageURL, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.BasePrice, err = decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetCategories(ctx context.Context) ([]string, error) {
	rows, err := config.DB.Query(ctx, "SELECT DISTINCT category FROM products ORDER BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var cat string
		if err := rows.Scan(&cat); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

type productRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanProducts(rows productRows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		var price string
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Content, &p.Category, &price, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
		p.BasePrice = d
		products = append(products, p)
	}
	return products, rows.Err()
}

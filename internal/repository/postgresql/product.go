package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/db"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/repository"
)

type ProductRepo struct {
	db db.DB
}

func NewProductRepo(db db.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	var rows []*repository.ProductRow
	err := r.db.Select(ctx, &rows, "SELECT * FROM products ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProduct(row))
	}
	return products, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var row repository.ProductRow
	err := r.db.Get(ctx, &row, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	p := toProduct(&row)
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO products (
            id, name, description, price, stock, category, images, sales, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, p.ID, p.Name, p.Description, p.Price, p.Stock, p.Category, p.Images, p.Sales, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE products
        SET
            name = $1,
            description = $2,
            price = $3,
            stock = $4,
            category = $5,
            images = $6,
            updated_at = $7
        WHERE id = $8
    `, p.Name, p.Description, p.Price, p.Stock, p.Category, p.Images, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func toProduct(row *repository.ProductRow) model.Product {
	return model.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Stock:       row.Stock,
		Category:    row.Category,
		Images:      row.Images,
		Sales:       row.Sales,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

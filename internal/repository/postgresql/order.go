package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/db"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/repository"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) List(ctx context.Context) ([]model.Order, error) {
	var rows []*repository.OrderRow
	err := r.db.Select(ctx, &rows, "SELECT * FROM orders ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		order, err := toOrder(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// GetByID matches the internal id or the human-facing order number.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var row repository.OrderRow
	err := r.db.Get(ctx, &row, "SELECT * FROM orders WHERE id = $1 OR order_id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	order, err := toOrder(&row)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) Create(ctx context.Context, o *model.Order) error {
	row, err := toOrderRow(o)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO orders (
            id, order_id, customer, items, total_amount, status, payment_method, shipping_address, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, row.ID, row.OrderID, row.Customer, row.Items, row.TotalAmount, row.Status, row.PaymentMethod, row.ShippingAddress, row.CreatedAt, row.UpdatedAt)
	return err
}

func (r *OrderRepo) Update(ctx context.Context, o *model.Order) error {
	row, err := toOrderRow(o)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `
        UPDATE orders
        SET
            customer = $1,
            items = $2,
            total_amount = $3,
            status = $4,
            payment_method = $5,
            shipping_address = $6,
            updated_at = $7
        WHERE id = $8
    `, row.Customer, row.Items, row.TotalAmount, row.Status, row.PaymentMethod, row.ShippingAddress, row.UpdatedAt, row.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1 OR order_id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func toOrder(row *repository.OrderRow) (model.Order, error) {
	order := model.Order{
		ID:            row.ID,
		OrderID:       row.OrderID,
		TotalAmount:   row.TotalAmount,
		Status:        model.OrderStatus(row.Status),
		PaymentMethod: model.PaymentMethod(row.PaymentMethod),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if err := json.Unmarshal(row.Customer, &order.Customer); err != nil {
		return model.Order{}, fmt.Errorf("decode customer for order %s: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.Items, &order.Items); err != nil {
		return model.Order{}, fmt.Errorf("decode items for order %s: %w", row.ID, err)
	}
	if len(row.ShippingAddress) > 0 {
		var addr model.Address
		if err := json.Unmarshal(row.ShippingAddress, &addr); err != nil {
			return model.Order{}, fmt.Errorf("decode shipping address for order %s: %w", row.ID, err)
		}
		order.ShippingAddress = &addr
	}
	return order, nil
}

func toOrderRow(o *model.Order) (*repository.OrderRow, error) {
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return nil, fmt.Errorf("encode customer: %w", err)
	}
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	row := &repository.OrderRow{
		ID:            o.ID,
		OrderID:       o.OrderID,
		Customer:      customer,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if o.ShippingAddress != nil {
		addr, err := json.Marshal(o.ShippingAddress)
		if err != nil {
			return nil, fmt.Errorf("encode shipping address: %w", err)
		}
		row.ShippingAddress = addr
	}
	return row, nil
}

package repository

import (
	"errors"
	"time"
)

// ErrObjectNotFound is the authoritative negative: the store was reachable
// and the row does not exist. Any other repository error means the store
// is unavailable.
var ErrObjectNotFound = errors.New("not found")

type ProductRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Stock       int       `db:"stock"`
	Category    string    `db:"category"`
	Images      []string  `db:"images"`
	Sales       int       `db:"sales"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// OrderRow keeps the structured fields as jsonb payloads.
type OrderRow struct {
	ID              string    `db:"id"`
	OrderID         string    `db:"order_id"`
	Customer        []byte    `db:"customer"`
	Items           []byte    `db:"items"`
	TotalAmount     float64   `db:"total_amount"`
	Status          string    `db:"status"`
	PaymentMethod   string    `db:"payment_method"`
	ShippingAddress []byte    `db:"shipping_address"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type UserRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

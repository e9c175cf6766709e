package model

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentDebitCard      PaymentMethod = "debit_card"
	PaymentUPI            PaymentMethod = "upi"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentNetBanking     PaymentMethod = "net_banking"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentUPI, PaymentCashOnDelivery, PaymentNetBanking:
		return true
	}
	return false
}

type Customer struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

type Order struct {
	ID              string        `json:"_id"`
	OrderID         string        `json:"orderId"`
	Customer        Customer      `json:"customer"`
	Items           []OrderItem   `json:"items"`
	TotalAmount     float64       `json:"totalAmount"`
	Status          OrderStatus   `json:"status"`
	PaymentMethod   PaymentMethod `json:"paymentMethod,omitempty"`
	ShippingAddress *Address      `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func (o *Order) Validate() error {
	if o.Customer.Name == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if o.Customer.Email == "" {
		return fmt.Errorf("%w: customer email is required", ErrValidation)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}
	for i, item := range o.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be greater than zero", ErrValidation, i)
		}
	}
	if o.Status != "" && !o.Status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, o.Status)
	}
	if o.PaymentMethod != "" && !o.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, o.PaymentMethod)
	}
	return nil
}

// OrderUpdate carries a partial order update. Identity and the human-facing
// order number are immutable and absent from the payload type.
type OrderUpdate struct {
	Customer        *Customer      `json:"customer"`
	Items           *[]OrderItem   `json:"items"`
	TotalAmount     *float64       `json:"totalAmount"`
	Status          *OrderStatus   `json:"status"`
	PaymentMethod   *PaymentMethod `json:"paymentMethod"`
	ShippingAddress *Address       `json:"shippingAddress"`
}

// Validate checks only the fields the update sets.
func (u OrderUpdate) Validate() error {
	if u.Customer != nil {
		if u.Customer.Name == "" {
			return fmt.Errorf("%w: customer name is required", ErrValidation)
		}
		if u.Customer.Email == "" {
			return fmt.Errorf("%w: customer email is required", ErrValidation)
		}
	}
	if u.Items != nil {
		if len(*u.Items) == 0 {
			return fmt.Errorf("%w: order must contain at least one item", ErrValidation)
		}
		for i, item := range *u.Items {
			if item.Quantity <= 0 {
				return fmt.Errorf("%w: item %d quantity must be greater than zero", ErrValidation, i)
			}
		}
	}
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, *u.Status)
	}
	if u.PaymentMethod != nil && !u.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, *u.PaymentMethod)
	}
	return nil
}

func (u OrderUpdate) Apply(o *Order) {
	if u.Customer != nil {
		o.Customer = *u.Customer
	}
	if u.Items != nil {
		o.Items = *u.Items
	}
	if u.TotalAmount != nil {
		o.TotalAmount = *u.TotalAmount
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.PaymentMethod != nil {
		o.PaymentMethod = *u.PaymentMethod
	}
	if u.ShippingAddress != nil {
		o.ShippingAddress = u.ShippingAddress
	}
	o.UpdatedAt = time.Now().UTC()
}

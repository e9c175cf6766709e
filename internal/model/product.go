package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation wraps all input validation failures so handlers can map
// them to a 400 without inspecting message text.
var ErrValidation = errors.New("validation failed")

const maxProductNameLen = 60

type Product struct {
	ID          string    `json:"_id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Stock       int       `json:"stock" db:"stock"`
	Category    string    `json:"category" db:"category"`
	Images      []string  `json:"images" db:"images"`
	Sales       int       `json:"sales" db:"sales"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(p.Name) > maxProductNameLen {
		return fmt.Errorf("%w: name cannot be more than %d characters", ErrValidation, maxProductNameLen)
	}
	if p.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must be a positive integer", ErrValidation)
	}
	if p.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	return nil
}

// ProductUpdate carries a partial update. Nil fields are left untouched.
// Identity is not part of the payload: a client-supplied id is discarded
// during decoding, so it can never overwrite the stored one.
type ProductUpdate struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Stock       *int      `json:"stock"`
	Category    *string   `json:"category"`
	Images      *[]string `json:"images"`
}

// Validate checks only the fields the update sets.
func (u ProductUpdate) Validate() error {
	if u.Name != nil {
		if *u.Name == "" {
			return fmt.Errorf("%w: name is required", ErrValidation)
		}
		if len(*u.Name) > maxProductNameLen {
			return fmt.Errorf("%w: name cannot be more than %d characters", ErrValidation, maxProductNameLen)
		}
	}
	if u.Description != nil && *u.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if u.Price != nil && *u.Price < 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if u.Stock != nil && *u.Stock < 0 {
		return fmt.Errorf("%w: stock must be a positive integer", ErrValidation)
	}
	if u.Category != nil && *u.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	return nil
}

// Apply merges the set fields over p and refreshes UpdatedAt.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Images != nil {
		p.Images = *u.Images
	}
	p.UpdatedAt = time.Now().UTC()
}

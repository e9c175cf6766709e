//go:generate mockgen -source ./catalog.go -destination=./mocks/catalog.go -package=mock_catalog

// Package catalog is the resilient data-access facade. Every operation
// attempts the database exactly once and, where the entity policy allows,
// falls back to the in-process mock store when the database is unreachable.
// A confirmed not-found from the database is authoritative and never
// triggers a fallback lookup.
package catalog

import (
	"context"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/repository"
)

// WarningMockData is attached to every response served from the fallback
// store so the UI can show a degraded-mode banner.
const WarningMockData = "Using mock data (DB Disconnected)"

// ErrNotFound is returned when an entity is absent from the reachable
// store, or from both stores on a fallback read.
var ErrNotFound = repository.ErrObjectNotFound

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	Create(ctx context.Context, o *model.Order) error
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id string) error
}

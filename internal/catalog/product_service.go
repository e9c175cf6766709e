package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/metrics"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/mockstore"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/repository"
)

// ProductService runs the availability-first policy: the catalog must stay
// editable in demos even with the database down, so writes fall back to the
// mock store and the caller is warned about the non-durable result.
type ProductService struct {
	repo   ProductRepository
	mock   *mockstore.Store
	logger *zap.Logger
}

func NewProductService(repo ProductRepository, mock *mockstore.Store, logger *zap.Logger) *ProductService {
	return &ProductService{repo: repo, mock: mock, logger: logger}
}

// List never fails: a database error demotes the response to the mock
// store's contents with the fallback warning set.
func (s *ProductService) List(ctx context.Context) ([]model.Product, string) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("database unavailable, listing products from mock store", zap.Error(err))
		metrics.FallbackServedTotal.WithLabelValues("product", "list").Inc()
		return s.mock.ListProducts(), WarningMockData
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, ""
}

func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, string, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return product, "", nil
	}
	if errors.Is(err, repository.ErrObjectNotFound) {
		// The store answered: the row does not exist. Authoritative.
		return nil, "", ErrNotFound
	}

	s.logger.Warn("database unavailable, looking up product in mock store",
		zap.String("id", id), zap.Error(err))
	metrics.FallbackServedTotal.WithLabelValues("product", "get").Inc()
	if product := s.mock.GetProduct(id); product != nil {
		return product, WarningMockData, nil
	}
	return nil, "", fmt.Errorf("product %s: %w", id, ErrNotFound)
}

func (s *ProductService) Create(ctx context.Context, input model.Product) (*model.Product, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	input.ID = uuid.NewString()
	input.CreatedAt = now
	input.UpdatedAt = now

	if err := s.repo.Create(ctx, &input); err != nil {
		s.logger.Warn("database unavailable, creating product in mock store", zap.Error(err))
		metrics.FallbackServedTotal.WithLabelValues("product", "create").Inc()
		created := s.mock.AddProduct(input)
		return &created, WarningMockData, nil
	}

	metrics.ProductsCreatedTotal.Inc()
	return &input, "", nil
}

func (s *ProductService) Update(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, string, error) {
	if err := upd.Validate(); err != nil {
		return nil, "", err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err == nil {
		upd.Apply(current)
		if err := s.repo.Update(ctx, current); err == nil {
			return current, "", nil
		} else if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, "", ErrNotFound
		}
		// Read succeeded but the write did not reach the store; demote.
		return s.fallbackUpdate(id, upd)
	}
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, "", ErrNotFound
	}
	return s.fallbackUpdate(id, upd)
}

func (s *ProductService) fallbackUpdate(id string, upd model.ProductUpdate) (*model.Product, string, error) {
	s.logger.Warn("database unavailable, updating product in mock store", zap.String("id", id))
	metrics.FallbackServedTotal.WithLabelValues("product", "update").Inc()
	if product := s.mock.UpdateProduct(id, upd); product != nil {
		return product, WarningMockData, nil
	}
	return nil, "", fmt.Errorf("product %s: %w", id, ErrNotFound)
}

func (s *ProductService) Delete(ctx context.Context, id string) (string, error) {
	err := s.repo.Delete(ctx, id)
	if err == nil {
		return "", nil
	}
	if errors.Is(err, repository.ErrObjectNotFound) {
		return "", ErrNotFound
	}

	s.logger.Warn("database unavailable, deleting product from mock store",
		zap.String("id", id), zap.Error(err))
	metrics.FallbackServedTotal.WithLabelValues("product", "delete").Inc()
	if s.mock.DeleteProduct(id) {
		return WarningMockData, nil
	}
	return "", fmt.Errorf("product %s: %w", id, ErrNotFound)
}

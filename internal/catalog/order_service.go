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

// ErrStoreUnavailable wraps database failures on order writes. Orders run
// the durability-first policy: a write that cannot reach the database is a
// failed write, never a silent demotion to process memory.
var ErrStoreUnavailable = errors.New("store unavailable")

type OrderService struct {
	repo   OrderRepository
	mock   *mockstore.Store
	logger *zap.Logger
}

func NewOrderService(repo OrderRepository, mock *mockstore.Store, logger *zap.Logger) *OrderService {
	return &OrderService{repo: repo, mock: mock, logger: logger}
}

// List never fails; reads are always safe to serve from the fallback.
func (s *OrderService) List(ctx context.Context) ([]model.Order, string) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("database unavailable, listing orders from mock store", zap.Error(err))
		metrics.FallbackServedTotal.WithLabelValues("order", "list").Inc()
		return s.mock.ListOrders(), WarningMockData
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, ""
}

func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, string, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return order, "", nil
	}
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, "", ErrNotFound
	}

	s.logger.Warn("database unavailable, looking up order in mock store",
		zap.String("id", id), zap.Error(err))
	metrics.FallbackServedTotal.WithLabelValues("order", "get").Inc()
	if order := s.mock.GetOrder(id); order != nil {
		return order, WarningMockData, nil
	}
	return nil, "", fmt.Errorf("order %s: %w", id, ErrNotFound)
}

func (s *OrderService) Create(ctx context.Context, input model.Order) (*model.Order, error) {
	if input.Status == "" {
		input.Status = model.StatusPending
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	input.ID = uuid.NewString()
	input.OrderID = mockstore.NewOrderNumber()
	input.CreatedAt = now
	input.UpdatedAt = now

	if err := s.repo.Create(ctx, &input); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("order_create").Inc()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	metrics.OrdersCreatedTotal.Inc()
	return &input, nil
}

func (s *OrderService) Update(ctx context.Context, id string, upd model.OrderUpdate) (*model.Order, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		metrics.OperationErrorsTotal.WithLabelValues("order_update").Inc()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	upd.Apply(current)
	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		metrics.OperationErrorsTotal.WithLabelValues("order_update").Inc()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return current, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrNotFound
		}
		metrics.OperationErrorsTotal.WithLabelValues("order_delete").Inc()
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

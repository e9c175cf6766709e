package mockstore_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/mockstore"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
)

func newSeeded() *mockstore.Store {
	s := mockstore.New()
	s.Seed()
	return s
}

func TestSeed(t *testing.T) {
	s := newSeeded()

	assert.Len(t, s.ListProducts(), 5)
	assert.Len(t, s.ListOrders(), 8)

	first := s.ListProducts()[0]
	assert.Equal(t, "prd-001", first.ID)
	assert.Equal(t, "Nike Air Max 270", first.Name)
}

func TestAddProduct(t *testing.T) {
	s := newSeeded()

	created := s.AddProduct(model.Product{
		Name:        "Test",
		Description: "d",
		Price:       10,
		Stock:       2,
		Category:    "c",
	})

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	products := s.ListProducts()
	require.Len(t, products, 6)
	assert.Equal(t, created.ID, products[0].ID, "creates must prepend")
}

func TestGetProduct(t *testing.T) {
	s := newSeeded()

	assert.NotNil(t, s.GetProduct("prd-003"))
	assert.Nil(t, s.GetProduct("does-not-exist"))
}

func TestUpdateProduct(t *testing.T) {
	s := newSeeded()

	t.Run("merges partial fields", func(t *testing.T) {
		name := "Renamed"
		stock := 99
		updated := s.UpdateProduct("prd-001", model.ProductUpdate{Name: &name, Stock: &stock})

		require.NotNil(t, updated)
		assert.Equal(t, "prd-001", updated.ID, "identity is immutable")
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, 99, updated.Stock)
		assert.Equal(t, "Footwear", updated.Category, "untouched fields survive")
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		name := "x"
		assert.Nil(t, s.UpdateProduct("nope", model.ProductUpdate{Name: &name}))
	})
}

func TestDeleteProduct(t *testing.T) {
	s := newSeeded()

	assert.False(t, s.DeleteProduct("does-not-exist"))

	assert.True(t, s.DeleteProduct("prd-002"))
	assert.Len(t, s.ListProducts(), 4)
	assert.Nil(t, s.GetProduct("prd-002"))
}

func TestReset(t *testing.T) {
	s := newSeeded()

	s.DeleteProduct("prd-001")
	s.AddProduct(model.Product{Name: "extra", Description: "d", Price: 1, Stock: 1, Category: "c"})
	s.Reset()

	assert.Len(t, s.ListProducts(), 5)
	assert.NotNil(t, s.GetProduct("prd-001"))
}

func TestConcurrentCreatesProduceDistinctIDs(t *testing.T) {
	s := newSeeded()

	const n = 100
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := s.AddProduct(model.Product{Name: "c", Description: "d", Price: 1, Stock: 1, Category: "c"})
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Len(t, s.ListProducts(), 5+n)
}

func TestOrders(t *testing.T) {
	s := newSeeded()

	t.Run("get matches id or order number", func(t *testing.T) {
		assert.NotNil(t, s.GetOrder("ord-001"))
		assert.NotNil(t, s.GetOrder("ORD-1767757582476-925"))
		assert.Nil(t, s.GetOrder("missing"))
	})

	t.Run("add defaults status and generates order number", func(t *testing.T) {
		created := s.AddOrder(model.Order{
			Customer:    model.Customer{Name: "n", Email: "n@example.com"},
			Items:       []model.OrderItem{{Name: "x", Quantity: 1, Price: 5}},
			TotalAmount: 5,
		})

		assert.Equal(t, model.StatusPending, created.Status)
		assert.Regexp(t, `^ORD-\d+-\d{3}$`, created.OrderID)
		assert.Equal(t, created.ID, s.ListOrders()[0].ID)
	})

	t.Run("update keeps identity and order number", func(t *testing.T) {
		status := model.StatusShipped
		updated := s.UpdateOrder("ord-002", model.OrderUpdate{Status: &status})

		require.NotNil(t, updated)
		assert.Equal(t, "ord-002", updated.ID)
		assert.Equal(t, "ORD-1767756912579-706", updated.OrderID)
		assert.Equal(t, model.StatusShipped, updated.Status)
	})

	t.Run("delete", func(t *testing.T) {
		assert.True(t, s.DeleteOrder("ord-003"))
		assert.Nil(t, s.GetOrder("ord-003"))
		assert.False(t, s.DeleteOrder("ord-003"))
	})
}

// Package mockstore is the in-process substitute for the database. It keeps
// the application usable when Postgres is unreachable: reads serve seeded
// fixture data and writes land in process memory, lost on restart.
package mockstore

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
)

// Store holds the fallback collections. Unlike the single-threaded runtime
// this design originated in, requests here run on concurrent goroutines, so
// every operation takes the mutex.
type Store struct {
	mu       sync.Mutex
	products []model.Product
	orders   []model.Order
	seq      uint64
}

// New returns an empty store. Call Seed to load the fixture data.
func New() *Store {
	return &Store{}
}

// Seed loads the fixture products and orders, replacing current contents.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	s.products = seedProducts(now)
	s.orders = seedOrders(now)
}

// Reset re-seeds the store. Intended for tests.
func (s *Store) Reset() {
	s.Seed()
}

// nextID is unique for the process lifetime even when two creates land in
// the same millisecond. Callers must hold s.mu.
func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), s.seq)
}

// ListProducts returns the collection most-recently-created first; creates
// prepend, so stored order is returned as is.
func (s *Store) ListProducts() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetProduct returns a copy of the product, or nil when absent.
func (s *Store) GetProduct(id string) *model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// AddProduct assigns a fresh identity and timestamps, inserts at the front
// and returns the stored product.
func (s *Store) AddProduct(p model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	p.ID = s.nextID("mock")
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products = append([]model.Product{p}, s.products...)
	return p
}

// UpdateProduct merges the partial update over the stored product. Identity
// is immutable. Returns nil when the id is unknown.
func (s *Store) UpdateProduct(id string, upd model.ProductUpdate) *model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			upd.Apply(&s.products[i])
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// DeleteProduct reports whether an entry was removed.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ListOrders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// GetOrder matches either the internal id or the human-facing order number.
func (s *Store) GetOrder(id string) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id || s.orders[i].OrderID == id {
			o := s.orders[i]
			return &o
		}
	}
	return nil
}

// AddOrder assigns identity, order number and timestamps, then prepends.
func (s *Store) AddOrder(o model.Order) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	o.ID = s.nextID("ord")
	o.OrderID = NewOrderNumber()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Status == "" {
		o.Status = model.StatusPending
	}
	s.orders = append([]model.Order{o}, s.orders...)
	return o
}

// UpdateOrder merges the partial update; id and order number stay fixed.
func (s *Store) UpdateOrder(id string, upd model.OrderUpdate) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id || s.orders[i].OrderID == id {
			upd.Apply(&s.orders[i])
			o := s.orders[i]
			return &o
		}
	}
	return nil
}

func (s *Store) DeleteOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id || s.orders[i].OrderID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}

// NewOrderNumber builds the human-facing order number, a creation-time
// component plus a random suffix.
func NewOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/auth"
	mock_auth "github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/auth/mocks"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/catalog"
	mock_catalog "github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/catalog/mocks"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/mockstore"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/server"
)

// envelope mirrors model.Response with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Warning string          `json:"_warning"`
}

type testEnv struct {
	router      http.Handler
	productRepo *mock_catalog.MockProductRepository
	orderRepo   *mock_catalog.MockOrderRepository
	userRepo    *mock_auth.MockUserRepository
	store       *mockstore.Store
	auth        *auth.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := zap.NewNop()

	productRepo := mock_catalog.NewMockProductRepository(ctrl)
	orderRepo := mock_catalog.NewMockOrderRepository(ctrl)
	userRepo := mock_auth.NewMockUserRepository(ctrl)

	store := mockstore.New()
	store.Seed()

	sessions := auth.NewSessionManager(time.Hour)
	authSvc := auth.NewService(userRepo, sessions, "admin@example.com", "admin123", logger)

	srv := server.New(
		catalog.NewProductService(productRepo, store, logger),
		catalog.NewOrderService(orderRepo, store, logger),
		authSvc,
		nil,
		nil,
		logger,
	)

	return &testEnv{
		router:      srv.Router(),
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		store:       store,
		auth:        authSvc,
	}
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	session, err := e.auth.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	return session.Token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var resp envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
}

func TestAuthGate(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing token", func(t *testing.T) {
		rec, resp := env.do(t, http.MethodGet, "/products", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized", resp.Error)
	})

	t.Run("bogus token", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodGet, "/products", "not-a-session", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("session cookie works instead of the header", func(t *testing.T) {
		env.productRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: env.login(t)})

		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	t.Run("success sets the session cookie", func(t *testing.T) {
		rec, resp := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "admin@example.com",
			"password": "admin123",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)

		var found bool
		for _, c := range rec.Result().Cookies() {
			if c.Name == "session_token" && c.Value != "" {
				found = true
			}
		}
		assert.True(t, found, "login must set session_token")
	})

	t.Run("bad credentials", func(t *testing.T) {
		env.userRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		rec, resp := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "ghost@example.com",
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid email or password", resp.Error)
	})
}

func TestProductEndpoints(t *testing.T) {
	t.Run("list falls back with warning when the database is down", func(t *testing.T) {
		env := newTestEnv(t)
		env.productRepo.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		rec, resp := env.do(t, http.MethodGet, "/products", env.login(t), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, catalog.WarningMockData, resp.Warning)

		var products []model.Product
		require.NoError(t, json.Unmarshal(resp.Data, &products))
		assert.Len(t, products, 5)
	})

	t.Run("get unknown product is 404", func(t *testing.T) {
		env := newTestEnv(t)
		env.productRepo.EXPECT().GetByID(gomock.Any(), "ghost").
			Return(nil, catalog.ErrNotFound)

		rec, resp := env.do(t, http.MethodGet, "/products/ghost", env.login(t), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found", resp.Error)
	})

	t.Run("create", func(t *testing.T) {
		env := newTestEnv(t)
		env.productRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		rec, resp := env.do(t, http.MethodPost, "/products", env.login(t), model.Product{
			Name:        "Widget",
			Description: "A widget",
			Price:       9.99,
			Stock:       3,
			Category:    "Tools",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Empty(t, resp.Warning)

		var product model.Product
		require.NoError(t, json.Unmarshal(resp.Data, &product))
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, "Widget", product.Name)
	})

	t.Run("create rejects invalid payload", func(t *testing.T) {
		env := newTestEnv(t)

		rec, _ := env.do(t, http.MethodPost, "/products", env.login(t), model.Product{
			Name: strings.Repeat("x", 61),
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create rejects malformed JSON", func(t *testing.T) {
		env := newTestEnv(t)

		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader("{nope"))
		req.Header.Set("Authorization", "Bearer "+env.login(t))
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update falls back with warning when the database is down", func(t *testing.T) {
		env := newTestEnv(t)
		connErr := errors.New("connection refused")
		env.productRepo.EXPECT().GetByID(gomock.Any(), "prd-001").Return(nil, connErr)

		newName := "Renamed"
		rec, resp := env.do(t, http.MethodPut, "/products/prd-001", env.login(t), model.ProductUpdate{
			Name: &newName,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, catalog.WarningMockData, resp.Warning)

		var product model.Product
		require.NoError(t, json.Unmarshal(resp.Data, &product))
		assert.Equal(t, "Renamed", product.Name)
		assert.Equal(t, "prd-001", product.ID)
	})

	t.Run("delete unknown product is 404", func(t *testing.T) {
		env := newTestEnv(t)
		env.productRepo.EXPECT().Delete(gomock.Any(), "ghost").
			Return(catalog.ErrNotFound)

		rec, _ := env.do(t, http.MethodDelete, "/products/ghost", env.login(t), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderEndpoints(t *testing.T) {
	t.Run("list falls back with warning", func(t *testing.T) {
		env := newTestEnv(t)
		env.orderRepo.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		rec, resp := env.do(t, http.MethodGet, "/orders", env.login(t), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, catalog.WarningMockData, resp.Warning)

		var orders []model.Order
		require.NoError(t, json.Unmarshal(resp.Data, &orders))
		assert.Len(t, orders, 8)
	})

	t.Run("create surfaces store failure as 500", func(t *testing.T) {
		env := newTestEnv(t)
		env.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		rec, resp := env.do(t, http.MethodPost, "/orders", env.login(t), model.Order{
			Customer: model.Customer{Name: "Jane", Email: "jane@example.com"},
			Items: []model.OrderItem{
				{Name: "Widget", Price: 9.99, Quantity: 1},
			},
			TotalAmount:   9.99,
			PaymentMethod: model.PaymentCreditCard,
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, resp.Error, "Database Error")
	})

	t.Run("create succeeds against the database", func(t *testing.T) {
		env := newTestEnv(t)
		env.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		rec, resp := env.do(t, http.MethodPost, "/orders", env.login(t), model.Order{
			Customer: model.Customer{Name: "Jane", Email: "jane@example.com"},
			Items: []model.OrderItem{
				{Name: "Widget", Price: 9.99, Quantity: 1},
			},
			TotalAmount:   9.99,
			PaymentMethod: model.PaymentCreditCard,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var order model.Order
		require.NoError(t, json.Unmarshal(resp.Data, &order))
		assert.Regexp(t, `^ORD-\d+-\d+$`, order.OrderID)
		assert.Equal(t, model.StatusPending, order.Status)
	})
}

func TestOnboardEndpoint(t *testing.T) {
	t.Run("requires an admin session", func(t *testing.T) {
		env := newTestEnv(t)

		rec, _ := env.do(t, http.MethodPost, "/admin/onboard", "", map[string]string{
			"name": "X", "email": "x@example.com", "password": "pw",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("creates the account", func(t *testing.T) {
		env := newTestEnv(t)
		env.userRepo.EXPECT().ExistsByEmail(gomock.Any(), "new@example.com").Return(false, nil)
		env.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		rec, resp := env.do(t, http.MethodPost, "/admin/onboard", env.login(t), map[string]string{
			"name": "New Admin", "email": "new@example.com", "password": "s3cret",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var data map[string]string
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "new@example.com", data["email"])
		assert.Empty(t, data["password"])
	})

	t.Run("duplicate email is a 400", func(t *testing.T) {
		env := newTestEnv(t)
		env.userRepo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(true, nil)

		rec, resp := env.do(t, http.MethodPost, "/admin/onboard", env.login(t), map[string]string{
			"name": "New Admin", "email": "taken@example.com", "password": "s3cret",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "User already exists", resp.Error)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec, _ := env.do(t, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/products", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

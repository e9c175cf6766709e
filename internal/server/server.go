package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/auth"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/catalog"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/uploader"
)

type Server struct {
	products *catalog.ProductService
	orders   *catalog.OrderService
	auth     *auth.Service
	uploader uploader.Uploader
	audit    *AuditManager
	logger   *zap.Logger

	server *http.Server
}

func New(
	products *catalog.ProductService,
	orders *catalog.OrderService,
	authSvc *auth.Service,
	up uploader.Uploader,
	audit *AuditManager,
	logger *zap.Logger,
) *Server {
	return &Server{
		products: products,
		orders:   orders,
		auth:     authSvc,
		uploader: up,
		audit:    audit,
		logger:   logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	if s.audit != nil {
		s.audit.Start(ctx)
	}

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	if s.audit != nil {
		s.audit.Shutdown(ctx)
	}
	s.logger.Info("server shutdown completed")
	return nil
}

// Router assembles the route table. Exported so tests can drive the full
// middleware chain through httptest.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()

	router.Use(s.loggingMiddleware, s.metricsMiddleware)

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	api := router.NewRoute().Subrouter()
	api.Use(s.sessionMiddleware, s.auditMiddleware)

	api.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	api.HandleFunc("/products", s.handleListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", s.handleCreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", s.handleGetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", s.handleUpdateProduct).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", s.handleDeleteProduct).Methods(http.MethodDelete)

	api.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", s.handleUpdateOrder).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}", s.handleDeleteOrder).Methods(http.MethodDelete)

	api.HandleFunc("/admin/onboard", s.handleOnboard).Methods(http.MethodPost)
	api.HandleFunc("/upload", s.handleUpload).Methods(http.MethodPost)

	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, model.Response{Success: true, Message: "ok"})
}

func respondJSON(w http.ResponseWriter, status int, resp model.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, model.Response{Success: false, Error: message})
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/catalog"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
)

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, warning := s.orders.List(r.Context())
	respondJSON(w, http.StatusOK, model.Response{
		Success: true,
		Data:    orders,
		Warning: warning,
	})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, warning, err := s.orders.Get(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	respondJSON(w, http.StatusOK, model.Response{
		Success: true,
		Data:    order,
		Warning: warning,
	})
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var input model.Order
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	order, err := s.orders.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Database Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, model.Response{Success: true, Data: order})
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var upd model.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	order, err := s.orders.Update(r.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, catalog.ErrNotFound):
			respondError(w, http.StatusNotFound, "Order not found")
		default:
			respondError(w, http.StatusInternalServerError, "Database Error: "+err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, model.Response{Success: true, Data: order})
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.orders.Delete(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Database Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, model.Response{Success: true, Data: struct{}{}})
}

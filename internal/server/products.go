package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/catalog"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, warning := s.products.List(r.Context())
	respondJSON(w, http.StatusOK, model.Response{
		Success: true,
		Data:    products,
		Warning: warning,
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, warning, err := s.products.Get(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	respondJSON(w, http.StatusOK, model.Response{
		Success: true,
		Data:    product,
		Warning: warning,
	})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var input model.Product
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	product, warning, err := s.products.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Database Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, model.Response{
		Success: true,
		Data:    product,
		Warning: warning,
	})
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var upd model.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	product, warning, err := s.products.Update(r.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, catalog.ErrNotFound):
			respondError(w, http.StatusNotFound, "Product not found")
		default:
			respondError(w, http.StatusInternalServerError, "Database Error: "+err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, model.Response{
		Success: true,
		Data:    product,
		Warning: warning,
	})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	warning, err := s.products.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		respondError(w, http.StatusBadRequest, "Failed to delete product")
		return
	}

	respondJSON(w, http.StatusOK, model.Response{
		Success: true,
		Data:    struct{}{},
		Warning: warning,
	})
}

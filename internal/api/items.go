package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tejavath/vaanibill/internal/models"
)

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListItems(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string          `json:"name"`
		Price decimal.Decimal `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid item data")
		return
	}

	item, err := s.store.CreateItem(r.Context(), req.Name, req.Price)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var upd models.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid update data")
		return
	}

	item, err := s.store.UpdateItem(r.Context(), id, upd)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteItem(r.Context(), id); err != nil {
		writeError(w, http.StatusBadRequest, "failed to delete item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

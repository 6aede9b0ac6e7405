package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/erazemk/catalog/internal/store"
)

// ItemsHandler handles the item endpoints.
type ItemsHandler struct {
	Items  store.Repository
	Logger *zap.Logger
}

// Pointer fields tell a missing field apart from a zero value.
type createItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// List handles GET /items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Items.List(r.Context())
	if err != nil {
		h.Logger.Error("listing items", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	h.Logger.Info("items listed", zap.String("user", Subject(r.Context())), zap.Int("count", len(items)))
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.Items.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.Logger.Warn("item not found", zap.String("user", Subject(r.Context())), zap.Int64("id", id))
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		h.Logger.Error("getting item", zap.Int64("id", id), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Create handles POST /items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == nil {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Price == nil {
		jsonError(w, http.StatusBadRequest, "price required")
		return
	}

	item, err := h.Items.Create(r.Context(), *req.Name, req.Description, *req.Price)
	if err != nil {
		h.Logger.Error("creating item", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	h.Logger.Info("item created", zap.String("user", Subject(r.Context())), zap.Int64("id", item.ID))
	jsonResponse(w, http.StatusOK, item)
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	first := parseIntDefault(r.URL.Query().Get("first"), 0)
	after := r.URL.Query().Get("after")

	res, err := h.service.ListProducts(r.Context(), first, after)
	if err != nil {
		writeMappedError(r.Context(), w, "list_products", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) productByHandle(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.ProductByHandle(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		writeMappedError(r.Context(), w, "product_by_handle", err)
		return
	}
	writeSuccess(w, http.StatusOK, product)
}

func (h *Handler) listCollections(w http.ResponseWriter, r *http.Request) {
	first := parseIntDefault(r.URL.Query().Get("first"), 0)

	collections, err := h.service.ListCollections(r.Context(), first)
	if err != nil {
		writeMappedError(r.Context(), w, "list_collections", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"collections": collections})
}

func (h *Handler) collectionProducts(w http.ResponseWriter, r *http.Request) {
	first := parseIntDefault(r.URL.Query().Get("first"), 0)

	res, err := h.service.CollectionProducts(r.Context(), chi.URLParam(r, "handle"), first)
	if err != nil {
		writeMappedError(r.Context(), w, "collection_products", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

package http

import (
	"net/http"

	"github.com/petitpas/storefront/internal/application"
)

func (h *Handler) cart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "get_cart")
		return
	}
	cart, err := h.service.Cart(r.Context(), sessionID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_cart", err)
		return
	}
	writeSuccess(w, http.StatusOK, cart)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "add_to_cart")
		return
	}
	var req application.AddToCartRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_to_cart", err)
		return
	}

	cart, err := h.service.AddToCart(r.Context(), sessionID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "add_to_cart", err)
		return
	}
	writeSuccess(w, http.StatusOK, cart)
}

func (h *Handler) updateCartLines(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "update_cart_lines")
		return
	}
	var req application.UpdateCartLinesRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_cart_lines", err)
		return
	}

	cart, err := h.service.UpdateCartLines(r.Context(), sessionID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_cart_lines", err)
		return
	}
	writeSuccess(w, http.StatusOK, cart)
}

func (h *Handler) removeCartLines(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "remove_cart_lines")
		return
	}
	var req application.RemoveCartLinesRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "remove_cart_lines", err)
		return
	}

	cart, err := h.service.RemoveCartLines(r.Context(), sessionID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "remove_cart_lines", err)
		return
	}
	writeSuccess(w, http.StatusOK, cart)
}

func (h *Handler) checkoutURL(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "checkout_url")
		return
	}
	url, err := h.service.CheckoutURL(r.Context(), sessionID)
	if err != nil {
		writeMappedError(r.Context(), w, "checkout_url", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"checkout_url": url})
}

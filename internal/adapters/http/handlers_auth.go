package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/petitpas/storefront/internal/application"
)

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	sessionID, token, err := h.service.StartSession(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "start_session", err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{
		"session_id":    sessionID,
		"session_token": token,
	})
}

func (h *Handler) sessionState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "session_state")
		return
	}
	state, err := h.service.SessionStateFor(r.Context(), sessionID)
	if err != nil {
		writeMappedError(r.Context(), w, "session_state", err)
		return
	}
	writeSuccess(w, http.StatusOK, state)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "login")
		return
	}
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "login", err)
		return
	}

	res, err := h.service.Login(r.Context(), sessionID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "logout")
		return
	}
	if err := h.service.Logout(r.Context(), sessionID); err != nil {
		writeMappedError(r.Context(), w, "logout", err)
		return
	}
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "register")
		return
	}
	var req application.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "register", err)
		return
	}

	res, err := h.service.Register(r.Context(), sessionID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "register", err)
		return
	}
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) accountCallback(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "account_callback")
		return
	}
	query := r.URL.Query()
	params := application.AccountCallbackParams{
		Verified:            query.Get("verified") == "true",
		Reset:               query.Get("reset") == "true",
		CustomerAccessToken: query.Get("customer_access_token"),
	}

	res, err := h.service.AccountCallback(r.Context(), sessionID, params)
	if err != nil {
		writeMappedError(r.Context(), w, "account_callback", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "account")
		return
	}
	customer, err := h.service.RefreshProfile(r.Context(), sessionID)
	if err != nil {
		writeMappedError(r.Context(), w, "account", err)
		return
	}
	writeSuccess(w, http.StatusOK, customer)
}

func (h *Handler) orders(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "orders")
		return
	}
	items, err := h.service.Orders(r.Context(), sessionID)
	if err != nil {
		writeMappedError(r.Context(), w, "orders", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"orders": items})
}

func (h *Handler) orderDetails(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "order_details")
		return
	}
	order, err := h.service.OrderDetails(r.Context(), sessionID, chi.URLParam(r, "order_id"))
	if err != nil {
		writeMappedError(r.Context(), w, "order_details", err)
		return
	}
	writeSuccess(w, http.StatusOK, order)
}

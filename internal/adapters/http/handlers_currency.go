package http

import (
	"net/http"
	"strconv"

	"github.com/petitpas/storefront/internal/domain"
)

func (h *Handler) listCurrencies(w http.ResponseWriter, r *http.Request) {
	codes := domain.SupportedCurrencies()
	symbols := make(map[string]string, len(codes))
	for _, code := range codes {
		symbols[code] = domain.CurrencySymbol(code)
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"base":       domain.BaseCurrency,
		"currencies": codes,
		"symbols":    symbols,
	})
}

func (h *Handler) currency(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "get_currency")
		return
	}
	info, err := h.service.CurrencyInfo(r.Context(), sessionID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_currency", err)
		return
	}
	writeSuccess(w, http.StatusOK, info)
}

func (h *Handler) setCurrency(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromContext(r)
	if !ok {
		writeMissingSessionError(r.Context(), w, "set_currency")
		return
	}
	var req struct {
		Currency string `json:"currency"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "set_currency", err)
		return
	}

	if err := h.service.SetCurrency(r.Context(), sessionID, req.Currency); err != nil {
		writeMappedError(r.Context(), w, "set_currency", err)
		return
	}
	writeMessage(w, http.StatusOK, "Currency updated")
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionIDFromContext(r); !ok {
		writeMissingSessionError(r.Context(), w, "quote")
		return
	}
	query := r.URL.Query()
	amount, err := strconv.ParseFloat(query.Get("amount"), 64)
	if err != nil || amount < 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "amount must be a non-negative number")
		return
	}

	res, err := h.service.Quote(amount, query.Get("currency"))
	if err != nil {
		writeMappedError(r.Context(), w, "quote", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

package http

import (
	"net/http"
	"strings"

	"github.com/petitpas/storefront/internal/application"
)

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := application.SearchFilter{
		Query: query.Get("q"),
		Type:  query.Get("type"),
		Sort:  query.Get("sort"),
		Limit: parseIntDefault(query.Get("limit"), 0),
	}
	if colors := strings.TrimSpace(query.Get("colors")); colors != "" {
		filter.Colors = strings.Split(colors, ",")
	}
	// The quick-search dropdown asks for a capped preview.
	if query.Get("preview") == "true" {
		filter.Limit = application.PreviewLimit
	}

	res, err := h.service.Search(r.Context(), filter)
	if err != nil {
		writeMappedError(r.Context(), w, "search", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

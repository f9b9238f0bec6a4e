// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	app "github.com/sleiderink/skifinder/internal/app"
)

// CatalogHandler handles raw catalog requests.
type CatalogHandler struct {
	deps Dependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps Dependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// HandleGetCatalog handles GET /api/catalog requests: the proxy read
// endpoint. Records come back normalized; the upstream credential
// never leaves the server.
func (h *CatalogHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	skis, err := h.deps.Catalog(r.Context())
	if err != nil {
		if errors.Is(err, app.ErrFetchTimeout) {
			writeError(w, http.StatusGatewayTimeout, "upstream_timeout", err)
			return
		}
		writeError(w, http.StatusBadGateway, "upstream_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, skis)
}

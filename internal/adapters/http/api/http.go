// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sleiderink/skifinder/internal/domain/model"
	"github.com/sleiderink/skifinder/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the app service.
type Dependencies interface {
	// Search ranks a freshly fetched catalog against preferences.
	Search(ctx context.Context, prefs model.Preferences) (types.SearchResult, error)

	// Catalog returns the normalized catalog without ranking.
	Catalog(ctx context.Context) ([]model.Ski, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	searchHandler  *SearchHandler
	catalogHandler *CatalogHandler
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		searchHandler:  NewSearchHandler(deps),
		catalogHandler: NewCatalogHandler(deps),
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux. Every route carries CORS
// headers so the browser-hosted wizard can call the service directly.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", CORSMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/stats", CORSMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/api/search", CORSMiddleware(MetricsMiddleware(s.searchHandler.HandlePostSearch, "search")))
	mux.HandleFunc("/api/catalog", CORSMiddleware(MetricsMiddleware(s.catalogHandler.HandleGetCatalog, "catalog")))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

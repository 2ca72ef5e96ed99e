package server

import (
	"net/http"
	"strings"
)

// setupRoutes registers all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Screener endpoints
	mux.HandleFunc("/api/stocks", s.app.StocksHandler.ListHandler)
	mux.HandleFunc("/api/stocks/metrics", s.app.StocksHandler.MetricsHandler)
	mux.HandleFunc("/api/stocks/top-gainers", s.app.StocksHandler.TopGainersHandler)
	mux.HandleFunc("/api/stocks/dividend-leaders", s.app.StocksHandler.DividendLeadersHandler)
	mux.HandleFunc("/api/stocks/undervalued-growth", s.app.StocksHandler.UndervaluedGrowthHandler)

	// News endpoints
	mux.HandleFunc("/api/news/latest", s.app.NewsHandler.LatestHandler)

	// Service endpoints
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// Unknown API routes get a JSON 404; the bare root gets a welcome
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			s.app.APIHandler.NotFoundHandler(w, r)
			return
		}
		s.app.APIHandler.RootHandler(w, r)
	})

	return mux
}

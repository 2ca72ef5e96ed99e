package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrynt/internal/models"
	"github.com/ternarybob/scrynt/internal/screener"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// StocksHandler serves the screener endpoints.
type StocksHandler struct {
	store  *screener.Store
	logger arbor.ILogger
}

// NewStocksHandler creates a stocks handler.
func NewStocksHandler(store *screener.Store, logger arbor.ILogger) *StocksHandler {
	return &StocksHandler{
		store:  store,
		logger: logger,
	}
}

// StockPageResponse is the paginated screener envelope.
type StockPageResponse struct {
	Data        []models.StockRecord `json:"data"`
	Count       int                  `json:"count"`
	TotalCount  int                  `json:"total_count"`
	TotalPages  int                  `json:"total_pages"`
	CurrentPage int                  `json:"current_page"`
	LastUpdated *string              `json:"last_updated"`
}

// StockListResponse is the unpaginated ranking envelope.
type StockListResponse struct {
	Data        []models.StockRecord `json:"data"`
	Count       int                  `json:"count"`
	LastUpdated *string              `json:"last_updated"`
}

// MetricInfo describes one filterable metric for API consumers.
type MetricInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MetricsResponse lists the filterable metrics and available sectors.
type MetricsResponse struct {
	Metrics     []MetricInfo `json:"metrics"`
	Sectors     []string     `json:"sectors"`
	LastUpdated *string      `json:"last_updated"`
}

// metricCatalog documents the query parameters of the list endpoint.
var metricCatalog = []MetricInfo{
	{Name: "ticker", Description: "Case-insensitive ticker substring match"},
	{Name: "sectors", Description: "Sector membership, repeatable or comma-separated"},
	{Name: "min_market_cap / max_market_cap", Description: "Market capitalization bounds"},
	{Name: "min_dividend_yield / max_dividend_yield", Description: "Dividend yield bounds (%)"},
	{Name: "min_peg / max_peg", Description: "PEG ratio bounds"},
	{Name: "min_pb / max_pb", Description: "Price-to-book ratio bounds"},
	{Name: "min_pe_forward / max_pe_forward", Description: "Forward P/E bounds"},
	{Name: "min_eps_growth", Description: "Minimum 3-year EPS growth (%)"},
	{Name: "min_revenue_growth", Description: "Minimum 3-year revenue growth (%)"},
	{Name: "min_roe", Description: "Minimum return on equity (%)"},
	{Name: "min_roa", Description: "Minimum return on assets (%)"},
	{Name: "sort_by", Description: "Sort field (any record field name)"},
	{Name: "sort_desc", Description: "Sort descending (default true)"},
	{Name: "page / limit", Description: "1-indexed pagination"},
}

// ListHandler handles GET /api/stocks with filtering, sorting and
// pagination.
func (h *StocksHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if boolParam(r, "refresh", false) {
		h.store.Invalidate()
	}

	page := intParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := intParam(r, "limit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	snapshot, err := h.store.Get(r.Context())
	if err != nil {
		// Degrades to an empty snapshot; the request still succeeds
		h.logger.Warn().Err(err).Msg("Serving screener request with empty dataset")
	}

	query := screener.NewQuery().
		TickerContains(r.URL.Query().Get("ticker")).
		Sectors(listParam(r, "sectors")).
		MarketCapRange(floatParam(r, "min_market_cap"), floatParam(r, "max_market_cap")).
		DividendYieldRange(floatParam(r, "min_dividend_yield"), floatParam(r, "max_dividend_yield")).
		PEGRange(floatParam(r, "min_peg"), floatParam(r, "max_peg")).
		PBRange(floatParam(r, "min_pb"), floatParam(r, "max_pb")).
		ForwardPERange(floatParam(r, "min_pe_forward"), floatParam(r, "max_pe_forward")).
		MinEPSGrowth(floatParam(r, "min_eps_growth")).
		MinRevenueGrowth(floatParam(r, "min_revenue_growth")).
		MinROE(floatParam(r, "min_roe")).
		MinROA(floatParam(r, "min_roa"))

	// No sort_by means snapshot order, not an implicit default
	sortBy := r.URL.Query().Get("sort_by")
	sortDesc := boolParam(r, "sort_desc", true)

	records, total := query.Results(snapshot, sortBy, sortDesc, page, limit)

	totalPages := (total + limit - 1) / limit

	WriteJSON(w, http.StatusOK, StockPageResponse{
		Data:        records,
		Count:       len(records),
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		LastUpdated: formatUpdated(snapshot.FetchedAt),
	})
}

// MetricsHandler handles GET /api/stocks/metrics.
func (h *StocksHandler) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Serving metrics with empty dataset")
	}

	WriteJSON(w, http.StatusOK, MetricsResponse{
		Metrics:     metricCatalog,
		Sectors:     screener.SectorNames(snapshot),
		LastUpdated: formatUpdated(snapshot.FetchedAt),
	})
}

// TopGainersHandler handles GET /api/stocks/top-gainers.
func (h *StocksHandler) TopGainersHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Serving top gainers with empty dataset")
	}

	period := r.URL.Query().Get("period")
	limit := intParam(r, "limit", screener.DefaultRankingLimit)

	records := screener.TopGainers(snapshot, period, limit)

	WriteJSON(w, http.StatusOK, StockListResponse{
		Data:        records,
		Count:       len(records),
		LastUpdated: formatUpdated(snapshot.FetchedAt),
	})
}

// DividendLeadersHandler handles GET /api/stocks/dividend-leaders.
func (h *StocksHandler) DividendLeadersHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Serving dividend leaders with empty dataset")
	}

	limit := intParam(r, "limit", screener.DefaultRankingLimit)
	records := screener.HighestDividendYields(snapshot, limit)

	WriteJSON(w, http.StatusOK, StockListResponse{
		Data:        records,
		Count:       len(records),
		LastUpdated: formatUpdated(snapshot.FetchedAt),
	})
}

// UndervaluedGrowthHandler handles GET /api/stocks/undervalued-growth.
func (h *StocksHandler) UndervaluedGrowthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Serving undervalued growth with empty dataset")
	}

	limit := intParam(r, "limit", screener.DefaultRankingLimit)
	records := screener.UndervaluedGrowth(snapshot, limit)

	WriteJSON(w, http.StatusOK, StockListResponse{
		Data:        records,
		Count:       len(records),
		LastUpdated: formatUpdated(snapshot.FetchedAt),
	})
}

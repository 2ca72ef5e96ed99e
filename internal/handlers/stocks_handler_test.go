package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/scrynt/internal/common"
	"github.com/ternarybob/scrynt/internal/models"
	"github.com/ternarybob/scrynt/internal/screener"
)

type stubSource struct {
	records []models.StockRecord
}

func (s *stubSource) Fetch(ctx context.Context) ([]models.StockRecord, error) {
	return s.records, nil
}

func testStocksHandler() *StocksHandler {
	// Dataset order deliberately differs from any metric ordering
	source := &stubSource{records: []models.StockRecord{
		{Ticker: "JPM", Price: 210, MarketCap: 6.0e11, Sector: "Financials", Change1W: -1, DividendYield: 2.2},
		{Ticker: "KO", Price: 62, MarketCap: 2.7e11, Sector: "Consumer Staples", Change1W: 1, DividendYield: 3.1},
		{Ticker: "AAPL", Price: 189.5, MarketCap: 2.9e12, Sector: "Technology", Change1W: 2, DividendYield: 0.5},
	}}
	store := screener.NewStore(source, common.GetLogger())
	return NewStocksHandler(store, common.GetLogger())
}

func TestListHandler(t *testing.T) {
	h := testStocksHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/stocks", nil)
	rec := httptest.NewRecorder()
	h.ListHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp StockPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
	require.NotNil(t, resp.LastUpdated)

	// Without sort_by the dataset order is returned as-is
	assert.Equal(t, "JPM", resp.Data[0].Ticker)
	assert.Equal(t, "KO", resp.Data[1].Ticker)
	assert.Equal(t, "AAPL", resp.Data[2].Ticker)
}

func TestListHandler_SortByMarketCap(t *testing.T) {
	h := testStocksHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/stocks?sort_by=market_cap", nil)
	rec := httptest.NewRecorder()
	h.ListHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StockPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "AAPL", resp.Data[0].Ticker)
	assert.Equal(t, "JPM", resp.Data[1].Ticker)
	assert.Equal(t, "KO", resp.Data[2].Ticker)
}

func TestListHandler_FiltersAndPagination(t *testing.T) {
	h := testStocksHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/stocks?min_dividend_yield=1&page=1&limit=1&sort_by=dividend_yield", nil)
	rec := httptest.NewRecorder()
	h.ListHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StockPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, "KO", resp.Data[0].Ticker)
}

func TestListHandler_PagePastEnd(t *testing.T) {
	h := testStocksHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/stocks?page=5&limit=10", nil)
	rec := httptest.NewRecorder()
	h.ListHandler(rec, req)

	var resp StockPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Data, "data must encode as [] not null")
	assert.Equal(t, 3, resp.TotalCount)
}

func TestListHandler_MethodNotAllowed(t *testing.T) {
	h := testStocksHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/stocks", nil)
	rec := httptest.NewRecorder()
	h.ListHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMetricsHandler(t *testing.T) {
	h := testStocksHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/metrics", nil)
	rec := httptest.NewRecorder()
	h.MetricsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MetricsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Metrics)
	assert.Equal(t, []string{"Consumer Staples", "Financials", "Technology"}, resp.Sectors)
}

func TestTopGainersHandler(t *testing.T) {
	h := testStocksHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/top-gainers?period=1w&limit=5", nil)
	rec := httptest.NewRecorder()
	h.TopGainersHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StockListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// JPM is down on the week and excluded
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "AAPL", resp.Data[0].Ticker)
	assert.Equal(t, "KO", resp.Data[1].Ticker)
}

func TestDividendLeadersHandler(t *testing.T) {
	h := testStocksHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/dividend-leaders?limit=2", nil)
	rec := httptest.NewRecorder()
	h.DividendLeadersHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StockListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "KO", resp.Data[0].Ticker)
	assert.Equal(t, "JPM", resp.Data[1].Ticker)
}

package provider

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ternarybob/scrynt/internal/models"
)

// csvHeader mirrors the StockRecord field order.
var csvHeader = []string{
	"ticker", "price", "market_cap", "pe_ratio", "peg_ratio", "fcf_yield",
	"roe", "roa", "revenue", "operating_income", "net_income", "fcf",
	"eps", "sector", "pe_forward", "pb_ratio", "ps_ratio",
	"eps_growth_3y", "revenue_growth_3y", "debt_equity", "beta",
	"dividend_yield", "payout_ratio", "dividend_growth", "analyst_rating",
	"analyst_count", "price_target", "price_target_change", "change_1w",
	"change_1m", "change_6m", "change_ytd", "change_1y", "change_3y",
}

// WriteSnapshotCSV writes the snapshot to a timestamped CSV file plus a
// stable "latest" copy under dir. Returns the timestamped path.
func WriteSnapshotCSV(dir string, snapshot *models.Snapshot) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	stamp := snapshot.FetchedAt
	if stamp.IsZero() {
		stamp = time.Now().UTC()
	}

	path := filepath.Join(dir, fmt.Sprintf("scrynt_data_%s.csv", stamp.Format("20060102_150405")))
	if err := writeCSV(path, snapshot.Records); err != nil {
		return "", err
	}

	latest := filepath.Join(dir, "scrynt_data_latest.csv")
	if err := writeCSV(latest, snapshot.Records); err != nil {
		return "", err
	}

	return path, nil
}

func writeCSV(path string, records []models.StockRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}

	for _, rec := range records {
		if err := w.Write(csvRow(rec)); err != nil {
			return fmt.Errorf("failed to write snapshot row for %s: %w", rec.Ticker, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush snapshot file %s: %w", path, err)
	}

	return nil
}

func csvRow(rec models.StockRecord) []string {
	ff := func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return []string{
		rec.Ticker, ff(rec.Price), ff(rec.MarketCap), ff(rec.PERatio),
		ff(rec.PEGRatio), ff(rec.FCFYield), ff(rec.ROE), ff(rec.ROA),
		ff(rec.Revenue), ff(rec.OperatingIncome), ff(rec.NetIncome),
		ff(rec.FCF), ff(rec.EPS), rec.Sector, ff(rec.PEForward),
		ff(rec.PBRatio), ff(rec.PSRatio), ff(rec.EPSGrowth3Y),
		ff(rec.RevenueGrowth3Y), ff(rec.DebtEquity), ff(rec.Beta),
		ff(rec.DividendYield), ff(rec.PayoutRatio), ff(rec.DividendGrowth),
		ff(rec.AnalystRating), ff(rec.AnalystCount), ff(rec.PriceTarget),
		ff(rec.PriceTargetChange), ff(rec.Change1W), ff(rec.Change1M),
		ff(rec.Change6M), ff(rec.ChangeYTD), ff(rec.Change1Y),
		ff(rec.Change3Y),
	}
}

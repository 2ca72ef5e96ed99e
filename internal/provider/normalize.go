package provider

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrynt/internal/models"
)

// Normalize flattens the raw screener payload into stock records. The
// payload shape is {data:{data:{TICKER:{field:value}}}}; anything that
// deviates yields an empty dataset rather than an error. Entries that
// are not field maps are skipped individually.
//
// JSON object keys carry no ordering guarantee, so records are sorted
// by ticker to give every snapshot a deterministic order.
func Normalize(payload map[string]interface{}, logger arbor.ILogger) []models.StockRecord {
	entries, ok := entryMap(payload)
	if !ok {
		if logger != nil {
			logger.Warn().Msg("Screener payload missing data.data map, returning empty dataset")
		}
		return nil
	}

	records := make([]models.StockRecord, 0, len(entries))
	for ticker, raw := range entries {
		fields, ok := raw.(map[string]interface{})
		if !ok {
			if logger != nil {
				logger.Debug().
					Str("ticker", ticker).
					Msg("Skipping screener entry: not a field map")
			}
			continue
		}

		rec := extractRecord(ticker, fields)
		sanitizeRecord(&rec)
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Ticker < records[j].Ticker
	})

	return records
}

// entryMap digs out the per-ticker entry map from the payload envelope.
func entryMap(payload map[string]interface{}) (map[string]interface{}, bool) {
	outer, ok := payload["data"].(map[string]interface{})
	if !ok {
		return nil, false
	}
	inner, ok := outer["data"].(map[string]interface{})
	if !ok {
		return nil, false
	}
	return inner, true
}

// extractRecord maps one provider entry to a StockRecord.
func extractRecord(ticker string, fields map[string]interface{}) models.StockRecord {
	return models.StockRecord{
		Ticker:            ticker,
		Price:             safeFloat(fields["price"]),
		MarketCap:         safeFloat(fields["marketCap"]),
		PERatio:           safeFloat(fields["peRatio"]),
		PEGRatio:          safeFloat(fields["pegRatio"]),
		FCFYield:          safeFloat(fields["fcfYield"]),
		ROE:               safeFloat(fields["roe"]),
		ROA:               safeFloat(fields["roa"]),
		Revenue:           safeFloat(fields["revenue"]),
		OperatingIncome:   safeFloat(fields["operatingIncome"]),
		NetIncome:         safeFloat(fields["netIncome"]),
		FCF:               safeFloat(fields["fcf"]),
		EPS:               safeFloat(fields["eps"]),
		Sector:            safeString(fields["sector"]),
		PEForward:         safeFloat(fields["peForward"]),
		PBRatio:           safeFloat(fields["pbRatio"]),
		PSRatio:           safeFloat(fields["psRatio"]),
		EPSGrowth3Y:       safeFloat(fields["epsGrowth3Y"]),
		RevenueGrowth3Y:   safeFloat(fields["revenueGrowth3Y"]),
		DebtEquity:        safeFloat(fields["debtEquity"]),
		Beta:              safeFloat(fields["beta"]),
		DividendYield:     safeFloat(fields["dividendYield"]),
		PayoutRatio:       safeFloat(fields["payoutRatio"]),
		DividendGrowth:    safeFloat(fields["dividendGrowth"]),
		AnalystRating:     safeFloat(fields["analystRatings"]),
		AnalystCount:      safeFloat(fields["analystCount"]),
		PriceTarget:       safeFloat(fields["priceTarget"]),
		PriceTargetChange: safeFloat(fields["priceTargetChange"]),
		Change1W:          safeFloat(fields["ch1w"]),
		Change1M:          safeFloat(fields["ch1m"]),
		Change6M:          safeFloat(fields["ch6m"]),
		ChangeYTD:         safeFloat(fields["chYTD"]),
		Change1Y:          safeFloat(fields["ch1y"]),
		Change3Y:          safeFloat(fields["ch3y"]),
	}
}

// safeFloat coerces a provider value to float64. Missing values and
// unparsable strings become 0 so the dataset stays rectangular.
func safeFloat(v interface{}) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// safeString coerces a provider value to a string, defaulting to "".
func safeString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// sanitizeRecord zeroes non-finite values. Infinities can arrive from
// provider data ("Inf" strings parse successfully) and would break JSON
// encoding downstream.
func sanitizeRecord(rec *models.StockRecord) {
	for _, f := range []*float64{
		&rec.Price, &rec.MarketCap, &rec.PERatio, &rec.PEGRatio,
		&rec.FCFYield, &rec.ROE, &rec.ROA, &rec.Revenue,
		&rec.OperatingIncome, &rec.NetIncome, &rec.FCF, &rec.EPS,
		&rec.PEForward, &rec.PBRatio, &rec.PSRatio, &rec.EPSGrowth3Y,
		&rec.RevenueGrowth3Y, &rec.DebtEquity, &rec.Beta,
		&rec.DividendYield, &rec.PayoutRatio, &rec.DividendGrowth,
		&rec.AnalystRating, &rec.AnalystCount, &rec.PriceTarget,
		&rec.PriceTargetChange,
		&rec.Change1W, &rec.Change1M, &rec.Change6M,
		&rec.ChangeYTD, &rec.Change1Y, &rec.Change3Y,
	} {
		if math.IsInf(*f, 0) || math.IsNaN(*f) {
			*f = 0
		}
	}
}

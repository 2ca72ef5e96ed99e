package screener

import (
	"math"
	"sort"

	"github.com/ternarybob/scrynt/internal/models"
)

// DefaultRankingLimit is the number of records a ranking returns when
// the caller gives no limit.
const DefaultRankingLimit = 10

// periodFields maps period tokens to return field names. Unknown
// tokens fall back to "1w".
var periodFields = map[string]string{
	"1w":  "change_1w",
	"1m":  "change_1m",
	"6m":  "change_6m",
	"ytd": "change_ytd",
	"1y":  "change_1y",
	"3y":  "change_3y",
}

// TopGainers returns the records with the highest positive return for
// the period, strongest first. Records with non-positive price or
// non-positive return are excluded.
func TopGainers(snapshot *models.Snapshot, period string, limit int) []models.StockRecord {
	field, ok := periodFields[period]
	if !ok {
		field = "change_1w"
	}
	change := numericFields[field]

	candidates := []models.StockRecord{}
	if snapshot != nil {
		for i := range snapshot.Records {
			rec := snapshot.Records[i]
			if rec.Price > 0 && change(&rec) > 0 {
				candidates = append(candidates, rec)
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return change(&candidates[i]) > change(&candidates[j])
	})

	return head(candidates, limit)
}

// HighestDividendYields returns the records with the highest dividend
// yield, highest first. Zero-yield records are excluded.
func HighestDividendYields(snapshot *models.Snapshot, limit int) []models.StockRecord {
	candidates := []models.StockRecord{}
	if snapshot != nil {
		for i := range snapshot.Records {
			if snapshot.Records[i].DividendYield > 0 {
				candidates = append(candidates, snapshot.Records[i])
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DividendYield > candidates[j].DividendYield
	})

	return head(candidates, limit)
}

// UndervaluedGrowth ranks records by a composite of growth and value:
// growth = eps_growth_3y + revenue_growth_3y, value = 1/(pe_forward +
// pb_ratio), composite = growth * value. Records whose composite is not
// finite (zero valuation denominators) are excluded. The intermediate
// scores never appear in the output.
func UndervaluedGrowth(snapshot *models.Snapshot, limit int) []models.StockRecord {
	type scored struct {
		rec       models.StockRecord
		composite float64
	}

	candidates := []scored{}
	if snapshot != nil {
		for i := range snapshot.Records {
			rec := snapshot.Records[i]
			growth := rec.EPSGrowth3Y + rec.RevenueGrowth3Y
			value := 1 / (rec.PEForward + rec.PBRatio)
			composite := growth * value
			if math.IsInf(composite, 0) || math.IsNaN(composite) {
				continue
			}
			candidates = append(candidates, scored{rec: rec, composite: composite})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].composite > candidates[j].composite
	})

	if limit <= 0 {
		limit = DefaultRankingLimit
	}
	if limit > len(candidates) {
		limit = len(candidates)
	}

	out := make([]models.StockRecord, 0, limit)
	for _, c := range candidates[:limit] {
		out = append(out, c.rec)
	}
	return out
}

// SectorNames returns the sorted distinct non-empty sector names in the
// snapshot.
func SectorNames(snapshot *models.Snapshot) []string {
	seen := map[string]struct{}{}
	if snapshot != nil {
		for i := range snapshot.Records {
			if sector := snapshot.Records[i].Sector; sector != "" {
				seen[sector] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func head(records []models.StockRecord, limit int) []models.StockRecord {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}
	if limit > len(records) {
		limit = len(records)
	}
	return records[:limit]
}

package screener

import (
	"sort"
	"strings"

	"github.com/ternarybob/scrynt/internal/models"
)

// Predicate is a single filter condition against one record.
type Predicate func(*models.StockRecord) bool

// Query is an immutable conjunction of filter conditions. Every
// filter method returns a new Query; the receiver is never mutated, so
// queries can be shared and extended safely.
type Query struct {
	preds []Predicate
}

// NewQuery returns an empty query that matches every record.
func NewQuery() Query {
	return Query{}
}

// with returns a copy of the query with one more condition. The
// predicate slice is copied at full capacity so appends never alias.
func (q Query) with(p Predicate) Query {
	preds := make([]Predicate, len(q.preds), len(q.preds)+1)
	copy(preds, q.preds)
	return Query{preds: append(preds, p)}
}

// TickerContains matches records whose ticker contains substr,
// case-insensitively. An empty substring is a no-op.
func (q Query) TickerContains(substr string) Query {
	if substr == "" {
		return q
	}
	needle := strings.ToUpper(substr)
	return q.with(func(r *models.StockRecord) bool {
		return strings.Contains(strings.ToUpper(r.Ticker), needle)
	})
}

// Sectors matches records whose sector is one of the given names. An
// empty list is a no-op.
func (q Query) Sectors(sectors []string) Query {
	if len(sectors) == 0 {
		return q
	}
	set := make(map[string]struct{}, len(sectors))
	for _, s := range sectors {
		set[s] = struct{}{}
	}
	return q.with(func(r *models.StockRecord) bool {
		_, ok := set[r.Sector]
		return ok
	})
}

// numericRange appends one-sided or two-sided bound conditions on the
// given getter. Nil bounds are no-ops.
func (q Query) numericRange(getter func(*models.StockRecord) float64, min, max *float64) Query {
	out := q
	if min != nil {
		lo := *min
		out = out.with(func(r *models.StockRecord) bool { return getter(r) >= lo })
	}
	if max != nil {
		hi := *max
		out = out.with(func(r *models.StockRecord) bool { return getter(r) <= hi })
	}
	return out
}

// numericMin appends a lower-bound condition. A nil bound is a no-op.
func (q Query) numericMin(getter func(*models.StockRecord) float64, min *float64) Query {
	return q.numericRange(getter, min, nil)
}

// MarketCapRange bounds market capitalization.
func (q Query) MarketCapRange(min, max *float64) Query {
	return q.numericRange(numericFields["market_cap"], min, max)
}

// DividendYieldRange bounds dividend yield.
func (q Query) DividendYieldRange(min, max *float64) Query {
	return q.numericRange(numericFields["dividend_yield"], min, max)
}

// PEGRange bounds PEG ratio.
func (q Query) PEGRange(min, max *float64) Query {
	return q.numericRange(numericFields["peg_ratio"], min, max)
}

// PBRange bounds price-to-book ratio.
func (q Query) PBRange(min, max *float64) Query {
	return q.numericRange(numericFields["pb_ratio"], min, max)
}

// ForwardPERange bounds forward P/E ratio.
func (q Query) ForwardPERange(min, max *float64) Query {
	return q.numericRange(numericFields["pe_forward"], min, max)
}

// MinEPSGrowth sets a lower bound on 3-year EPS growth.
func (q Query) MinEPSGrowth(min *float64) Query {
	return q.numericMin(numericFields["eps_growth_3y"], min)
}

// MinRevenueGrowth sets a lower bound on 3-year revenue growth.
func (q Query) MinRevenueGrowth(min *float64) Query {
	return q.numericMin(numericFields["revenue_growth_3y"], min)
}

// MinROE sets a lower bound on return on equity.
func (q Query) MinROE(min *float64) Query {
	return q.numericMin(numericFields["roe"], min)
}

// MinROA sets a lower bound on return on assets.
func (q Query) MinROA(min *float64) Query {
	return q.numericMin(numericFields["roa"], min)
}

func (q Query) matches(rec *models.StockRecord) bool {
	for _, p := range q.preds {
		if !p(rec) {
			return false
		}
	}
	return true
}

// Results applies the query against the snapshot: filter, stable sort,
// then paginate. The second return value is the filtered count before
// pagination. Unknown sort fields leave snapshot order untouched.
// Pages are 1-indexed; a page past the end yields an empty slice.
func (q Query) Results(snapshot *models.Snapshot, sortBy string, sortDesc bool, page, limit int) ([]models.StockRecord, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	filtered := []models.StockRecord{}
	if snapshot != nil {
		for i := range snapshot.Records {
			if q.matches(&snapshot.Records[i]) {
				filtered = append(filtered, snapshot.Records[i])
			}
		}
	}

	if getter, ok := numericFields[sortBy]; ok {
		sort.SliceStable(filtered, func(i, j int) bool {
			if sortDesc {
				return getter(&filtered[i]) > getter(&filtered[j])
			}
			return getter(&filtered[i]) < getter(&filtered[j])
		})
	} else if getter, ok := stringFields[sortBy]; ok {
		sort.SliceStable(filtered, func(i, j int) bool {
			if sortDesc {
				return getter(&filtered[i]) > getter(&filtered[j])
			}
			return getter(&filtered[i]) < getter(&filtered[j])
		})
	}

	total := len(filtered)

	start := (page - 1) * limit
	if start >= total {
		return []models.StockRecord{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return filtered[start:end], total
}

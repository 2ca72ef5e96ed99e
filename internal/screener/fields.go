package screener

import "github.com/ternarybob/scrynt/internal/models"

// numericFields maps sortable field names to getters. Names match the
// JSON field names of StockRecord.
var numericFields = map[string]func(*models.StockRecord) float64{
	"price":               func(r *models.StockRecord) float64 { return r.Price },
	"market_cap":          func(r *models.StockRecord) float64 { return r.MarketCap },
	"pe_ratio":            func(r *models.StockRecord) float64 { return r.PERatio },
	"peg_ratio":           func(r *models.StockRecord) float64 { return r.PEGRatio },
	"fcf_yield":           func(r *models.StockRecord) float64 { return r.FCFYield },
	"roe":                 func(r *models.StockRecord) float64 { return r.ROE },
	"roa":                 func(r *models.StockRecord) float64 { return r.ROA },
	"revenue":             func(r *models.StockRecord) float64 { return r.Revenue },
	"operating_income":    func(r *models.StockRecord) float64 { return r.OperatingIncome },
	"net_income":          func(r *models.StockRecord) float64 { return r.NetIncome },
	"fcf":                 func(r *models.StockRecord) float64 { return r.FCF },
	"eps":                 func(r *models.StockRecord) float64 { return r.EPS },
	"pe_forward":          func(r *models.StockRecord) float64 { return r.PEForward },
	"pb_ratio":            func(r *models.StockRecord) float64 { return r.PBRatio },
	"ps_ratio":            func(r *models.StockRecord) float64 { return r.PSRatio },
	"eps_growth_3y":       func(r *models.StockRecord) float64 { return r.EPSGrowth3Y },
	"revenue_growth_3y":   func(r *models.StockRecord) float64 { return r.RevenueGrowth3Y },
	"debt_equity":         func(r *models.StockRecord) float64 { return r.DebtEquity },
	"beta":                func(r *models.StockRecord) float64 { return r.Beta },
	"dividend_yield":      func(r *models.StockRecord) float64 { return r.DividendYield },
	"payout_ratio":        func(r *models.StockRecord) float64 { return r.PayoutRatio },
	"dividend_growth":     func(r *models.StockRecord) float64 { return r.DividendGrowth },
	"analyst_rating":      func(r *models.StockRecord) float64 { return r.AnalystRating },
	"analyst_count":       func(r *models.StockRecord) float64 { return r.AnalystCount },
	"price_target":        func(r *models.StockRecord) float64 { return r.PriceTarget },
	"price_target_change": func(r *models.StockRecord) float64 { return r.PriceTargetChange },
	"change_1w":           func(r *models.StockRecord) float64 { return r.Change1W },
	"change_1m":           func(r *models.StockRecord) float64 { return r.Change1M },
	"change_6m":           func(r *models.StockRecord) float64 { return r.Change6M },
	"change_ytd":          func(r *models.StockRecord) float64 { return r.ChangeYTD },
	"change_1y":           func(r *models.StockRecord) float64 { return r.Change1Y },
	"change_3y":           func(r *models.StockRecord) float64 { return r.Change3Y },
}

// stringFields maps sortable string field names to getters.
var stringFields = map[string]func(*models.StockRecord) string{
	"ticker": func(r *models.StockRecord) string { return r.Ticker },
	"sector": func(r *models.StockRecord) string { return r.Sector },
}

package models

import "time"

// StockRecord is one flattened row of the screener dataset. Every
// numeric field defaults to 0 when the provider omits it or sends an
// unparsable value.
type StockRecord struct {
	Ticker            string  `json:"ticker"`
	Price             float64 `json:"price"`
	MarketCap         float64 `json:"market_cap"`
	PERatio           float64 `json:"pe_ratio"`
	PEGRatio          float64 `json:"peg_ratio"`
	FCFYield          float64 `json:"fcf_yield"`
	ROE               float64 `json:"roe"`
	ROA               float64 `json:"roa"`
	Revenue           float64 `json:"revenue"`
	OperatingIncome   float64 `json:"operating_income"`
	NetIncome         float64 `json:"net_income"`
	FCF               float64 `json:"fcf"`
	EPS               float64 `json:"eps"`
	Sector            string  `json:"sector"`
	PEForward         float64 `json:"pe_forward"`
	PBRatio           float64 `json:"pb_ratio"`
	PSRatio           float64 `json:"ps_ratio"`
	EPSGrowth3Y       float64 `json:"eps_growth_3y"`
	RevenueGrowth3Y   float64 `json:"revenue_growth_3y"`
	DebtEquity        float64 `json:"debt_equity"`
	Beta              float64 `json:"beta"`
	DividendYield     float64 `json:"dividend_yield"`
	PayoutRatio       float64 `json:"payout_ratio"`
	DividendGrowth    float64 `json:"dividend_growth"`
	AnalystRating     float64 `json:"analyst_rating"`
	AnalystCount      float64 `json:"analyst_count"`
	PriceTarget       float64 `json:"price_target"`
	PriceTargetChange float64 `json:"price_target_change"`
	Change1W          float64 `json:"change_1w"`
	Change1M          float64 `json:"change_1m"`
	Change6M          float64 `json:"change_6m"`
	ChangeYTD         float64 `json:"change_ytd"`
	Change1Y          float64 `json:"change_1y"`
	Change3Y          float64 `json:"change_3y"`
}

// Snapshot is an immutable view of the screener dataset at a point in
// time. It is replaced wholesale, never updated in place.
type Snapshot struct {
	Records   []StockRecord
	FetchedAt time.Time
}

// Empty reports whether the snapshot holds no records.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Records) == 0
}

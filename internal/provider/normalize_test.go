package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "3.14", 3.14},
		{"negative string", "-2.5", -2.5},
		{"unparsable string", "n/a", 0},
		{"empty string", "", 0},
		{"bool", true, 0},
		{"map", map[string]interface{}{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeFloat(tt.input))
		})
	}
}

func screenerPayload(entries map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"data": entries,
		},
	}
}

func TestNormalize(t *testing.T) {
	payload := screenerPayload(map[string]interface{}{
		"AAPL": map[string]interface{}{
			"price":          "189.5",
			"marketCap":      2.9e12,
			"pegRatio":       nil,
			"sector":         "Technology",
			"analystRatings": "1.8",
			"ch1w":           2.1,
		},
		"MSFT": map[string]interface{}{
			"price":          401.2,
			"sector":         nil,
			"analystRatings": "Strong Buy",
		},
		"BROKEN": "not-a-map",
	})

	records := Normalize(payload, nil)
	require.Len(t, records, 2)

	// Sorted by ticker for deterministic snapshot order
	assert.Equal(t, "AAPL", records[0].Ticker)
	assert.Equal(t, "MSFT", records[1].Ticker)

	aapl := records[0]
	assert.Equal(t, 189.5, aapl.Price)
	assert.Equal(t, 2.9e12, aapl.MarketCap)
	assert.Equal(t, 0.0, aapl.PEGRatio)
	assert.Equal(t, "Technology", aapl.Sector)
	assert.Equal(t, 1.8, aapl.AnalystRating)
	assert.Equal(t, 2.1, aapl.Change1W)

	msft := records[1]
	assert.Equal(t, 401.2, msft.Price)
	assert.Equal(t, "", msft.Sector)
	assert.Equal(t, 0.0, msft.MarketCap)

	// Rating labels are not numbers; they coerce to 0 like any other
	// unparsable numeric field.
	assert.Equal(t, 0.0, msft.AnalystRating)
}

func TestNormalize_MalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"nil payload", nil},
		{"empty payload", map[string]interface{}{}},
		{"data not a map", map[string]interface{}{"data": "oops"}},
		{"inner data missing", map[string]interface{}{"data": map[string]interface{}{}}},
		{"inner data not a map", map[string]interface{}{"data": map[string]interface{}{"data": []interface{}{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Normalize(tt.payload, nil))
		})
	}
}

func TestNormalize_NonFiniteValuesZeroed(t *testing.T) {
	payload := screenerPayload(map[string]interface{}{
		"XYZ": map[string]interface{}{
			"price":    "Inf",
			"pegRatio": "-Inf",
			"pbRatio":  "NaN",
			"roe":      1.5,
		},
	})

	records := Normalize(payload, nil)
	require.Len(t, records, 1)

	assert.Equal(t, 0.0, records[0].Price)
	assert.Equal(t, 0.0, records[0].PEGRatio)
	assert.Equal(t, 0.0, records[0].PBRatio)
	assert.Equal(t, 1.5, records[0].ROE)
}

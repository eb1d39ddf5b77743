package budget

import "github.com/shopspring/decimal"

// ModelPricing holds per-model token prices in USD per million tokens.
type ModelPricing struct {
	InputPerMTok      decimal.Decimal
	OutputPerMTok     decimal.Decimal
	CacheWritePerMTok decimal.Decimal
	CacheReadPerMTok  decimal.Decimal
}

var million = decimal.NewFromInt(1_000_000)

// CostForInput calculates the input-side cost including cache tokens.
func (p ModelPricing) CostForInput(inputTokens, cacheReadTokens, cacheWriteTokens int64) decimal.Decimal {
	cost := decimal.NewFromInt(inputTokens).Mul(p.InputPerMTok).Div(million)
	cost = cost.Add(decimal.NewFromInt(cacheReadTokens).Mul(p.CacheReadPerMTok).Div(million))
	cost = cost.Add(decimal.NewFromInt(cacheWriteTokens).Mul(p.CacheWritePerMTok).Div(million))
	return cost
}

// CostForOutput calculates the output cost.
func (p ModelPricing) CostForOutput(outputTokens int64) decimal.Decimal {
	return decimal.NewFromInt(outputTokens).Mul(p.OutputPerMTok).Div(million)
}

// DefaultPricing contains built-in pricing for the models the platform
// routes to (USD per million tokens). Unknown models accrue tokens but no cost.
var DefaultPricing = map[string]ModelPricing{
	"claude-3-opus": {
		InputPerMTok:      decimal.NewFromFloat(15),
		OutputPerMTok:     decimal.NewFromFloat(75),
		CacheWritePerMTok: decimal.NewFromFloat(18.75),
		CacheReadPerMTok:  decimal.NewFromFloat(1.5),
	},
	"claude-3-sonnet": {
		InputPerMTok:      decimal.NewFromFloat(3),
		OutputPerMTok:     decimal.NewFromFloat(15),
		CacheWritePerMTok: decimal.NewFromFloat(3.75),
		CacheReadPerMTok:  decimal.NewFromFloat(0.3),
	},
	"claude-3-haiku": {
		InputPerMTok:      decimal.NewFromFloat(0.25),
		OutputPerMTok:     decimal.NewFromFloat(1.25),
		CacheWritePerMTok: decimal.NewFromFloat(0.3),
		CacheReadPerMTok:  decimal.NewFromFloat(0.03),
	},
}

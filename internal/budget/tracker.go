// Package budget tracks cumulative token usage and spend across model calls.
package budget

import (
	"sync"

	"github.com/shopspring/decimal"
)

// MaxDecimal is a sentinel value representing an effectively unlimited remaining budget.
var MaxDecimal = decimal.New(1, 18) // 1e18

// Usage holds token counts for a single model call.
type Usage struct {
	InputTokens              int64
	OutputTokens             int64
	CacheReadInputTokens     int64
	CacheCreationInputTokens int64
}

// Tracker tracks cumulative token usage and cost across model calls.
// It is safe for concurrent use.
type Tracker struct {
	maxBudget  decimal.Decimal // 0 = unlimited
	totalCost  decimal.Decimal
	totalUsage Usage
	pricing    map[string]ModelPricing
	mu         sync.Mutex
}

// NewTracker creates a new tracker. maxBudget of 0 means unlimited.
func NewTracker(maxBudget decimal.Decimal, pricing map[string]ModelPricing) *Tracker {
	return &Tracker{
		maxBudget: maxBudget,
		totalCost: decimal.Zero,
		pricing:   pricing,
	}
}

// RecordUsage records token usage for a single model call and updates the cumulative cost.
func (t *Tracker) RecordUsage(model string, usage Usage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalUsage.InputTokens += usage.InputTokens
	t.totalUsage.OutputTokens += usage.OutputTokens
	t.totalUsage.CacheReadInputTokens += usage.CacheReadInputTokens
	t.totalUsage.CacheCreationInputTokens += usage.CacheCreationInputTokens

	pricing, ok := t.pricing[model]
	if !ok {
		return // unknown model: tokens counted but no cost added
	}

	inputCost := pricing.CostForInput(usage.InputTokens, usage.CacheReadInputTokens, usage.CacheCreationInputTokens)
	outputCost := pricing.CostForOutput(usage.OutputTokens)
	t.totalCost = t.totalCost.Add(inputCost).Add(outputCost)
}

// TotalCost returns the cumulative cost across all recorded usage.
func (t *Tracker) TotalCost() decimal.Decimal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalCost
}

// TotalUsage returns the cumulative token usage across all recorded calls.
func (t *Tracker) TotalUsage() Usage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalUsage
}

// Remaining returns the remaining budget. If maxBudget is 0 (unlimited), returns MaxDecimal.
func (t *Tracker) Remaining() decimal.Decimal {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.maxBudget.IsZero() {
		return MaxDecimal
	}
	return t.maxBudget.Sub(t.totalCost)
}

// Exhausted returns true if the total cost has reached or exceeded maxBudget.
// Always returns false if maxBudget is 0 (unlimited).
func (t *Tracker) Exhausted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.maxBudget.IsZero() {
		return false
	}
	return t.totalCost.GreaterThanOrEqual(t.maxBudget)
}

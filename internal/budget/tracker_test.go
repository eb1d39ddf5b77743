package budget

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTracker_RecordUsageAccumulates(t *testing.T) {
	tr := NewTracker(decimal.Zero, DefaultPricing)

	tr.RecordUsage("claude-3-sonnet", Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000})

	// 1M input at $3 + 1M output at $15
	assert.True(t, tr.TotalCost().Equal(decimal.NewFromInt(18)), "got %s", tr.TotalCost())
	assert.Equal(t, int64(1_000_000), tr.TotalUsage().InputTokens)
	assert.Equal(t, int64(1_000_000), tr.TotalUsage().OutputTokens)
}

func TestTracker_CacheTokensBilled(t *testing.T) {
	tr := NewTracker(decimal.Zero, DefaultPricing)

	tr.RecordUsage("claude-3-sonnet", Usage{
		CacheReadInputTokens:     1_000_000,
		CacheCreationInputTokens: 1_000_000,
	})

	// 1M cache read at $0.3 + 1M cache write at $3.75
	assert.True(t, tr.TotalCost().Equal(decimal.NewFromFloat(4.05)), "got %s", tr.TotalCost())
}

func TestTracker_UnknownModelCountsTokensOnly(t *testing.T) {
	tr := NewTracker(decimal.Zero, DefaultPricing)

	tr.RecordUsage("mystery-model", Usage{InputTokens: 500, OutputTokens: 500})

	assert.True(t, tr.TotalCost().IsZero())
	assert.Equal(t, int64(500), tr.TotalUsage().InputTokens)
}

func TestTracker_Exhausted(t *testing.T) {
	tr := NewTracker(decimal.NewFromFloat(0.01), DefaultPricing)
	assert.False(t, tr.Exhausted())

	tr.RecordUsage("claude-3-opus", Usage{OutputTokens: 1000}) // $0.075
	assert.True(t, tr.Exhausted())
}

func TestTracker_UnlimitedNeverExhausted(t *testing.T) {
	tr := NewTracker(decimal.Zero, DefaultPricing)
	tr.RecordUsage("claude-3-opus", Usage{InputTokens: 10_000_000, OutputTokens: 10_000_000})
	assert.False(t, tr.Exhausted())
	assert.True(t, tr.Remaining().Equal(MaxDecimal))
}

func TestTracker_Remaining(t *testing.T) {
	tr := NewTracker(decimal.NewFromInt(10), DefaultPricing)
	tr.RecordUsage("claude-3-sonnet", Usage{InputTokens: 1_000_000}) // $3
	assert.True(t, tr.Remaining().Equal(decimal.NewFromInt(7)), "got %s", tr.Remaining())
}

func TestTracker_ConcurrentRecording(t *testing.T) {
	tr := NewTracker(decimal.Zero, DefaultPricing)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.RecordUsage("claude-3-haiku", Usage{InputTokens: 100, OutputTokens: 100})
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(5000), tr.TotalUsage().InputTokens)
	assert.Equal(t, int64(5000), tr.TotalUsage().OutputTokens)
}

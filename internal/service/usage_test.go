package service

import (
	"testing"

	"github.com/escapecenter/conciergebot/internal/domain"
)

var testTier = domain.ModelTier{
	ID:                   "gpt-3.5-turbo",
	ContextLimit:         4096,
	PromptPricePer1K:     0.001,
	CompletionPricePer1K: 0.002,
}

func TestCalculateCost(t *testing.T) {
	// 1000 prompt at 0.001/1K + 500 completion at 0.002/1K = 0.002 USD,
	// times the 3.7 display rate.
	cost := CalculateCost(1000, 500, testTier, 3.7)
	if got := cost.String(); got != "0.0074" {
		t.Errorf("cost = %s, want 0.0074", got)
	}
}

func TestCalculateCostZeroTokens(t *testing.T) {
	cost := CalculateCost(0, 0, testTier, 3.7)
	if !cost.IsZero() {
		t.Errorf("cost = %s, want zero", cost)
	}
}

func TestCumulativeCost(t *testing.T) {
	usage := domain.Usage{PromptTokens: 1000, CompletionTokens: 500, TotalTokens: 1500}
	if got := CumulativeCost(usage, testTier, 3.7).String(); got != "0.0074" {
		t.Errorf("cumulative cost = %s, want 0.0074", got)
	}
}

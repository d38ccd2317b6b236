package service

import (
	"github.com/escapecenter/conciergebot/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateCost derives the monetary cost of a request from its token
// counts and the tier's per-1K prices, converted to the display currency.
func CalculateCost(promptTokens, completionTokens int, tier domain.ModelTier, currencyRate float64) decimal.Decimal {
	promptCost := decimal.NewFromInt(int64(promptTokens)).
		Mul(decimal.NewFromFloat(tier.PromptPricePer1K)).
		Div(decimal.NewFromInt(1000))
	completionCost := decimal.NewFromInt(int64(completionTokens)).
		Mul(decimal.NewFromFloat(tier.CompletionPricePer1K)).
		Div(decimal.NewFromInt(1000))

	return promptCost.Add(completionCost).
		Mul(decimal.NewFromFloat(currencyRate)).
		Round(6)
}

// CumulativeCost prices a user's accumulated usage counters under the
// given tier, for the usage report.
func CumulativeCost(usage domain.Usage, tier domain.ModelTier, currencyRate float64) decimal.Decimal {
	return CalculateCost(int(usage.PromptTokens), int(usage.CompletionTokens), tier, currencyRate)
}

package domain

// ModelTier is a cost/capability class of the completion provider.
// Tiers are ordered cheap to expensive; the orchestrator escalates only
// when the assembled context no longer fits the cheaper tier.
type ModelTier struct {
	ID                   string
	ContextLimit         int
	PromptPricePer1K     float64
	CompletionPricePer1K float64
}

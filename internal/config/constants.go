package config

import (
	"time"

	"github.com/escapecenter/conciergebot/internal/domain"
)

const (
	// History kept per session, in turns
	HistoryLimit = 8

	// Token estimation overheads
	MessageTokenOverhead      = 4
	ConversationTokenOverhead = 2

	// Completion request shape
	CompletionBudget   = 500
	DefaultTemperature = 0.6

	// AI request timeout
	RequestTimeout = 90 * time.Second

	// Local cache capacities
	SessionCacheCapacity   = 1000
	KnowledgeCacheCapacity = 100

	// Conversation log truncation
	MaxLoggedTextLen = 300

	// Reserved inbound control messages
	ResetPhrase     = "end conversation"
	UsageReportCode = "12345"
)

// Model tiers, cheapest first. The orchestrator escalates down this list
// and rejects the request when even the last tier cannot hold the context.
var ModelTiers = []domain.ModelTier{
	{
		ID:                   "gpt-3.5-turbo",
		ContextLimit:         4096,
		PromptPricePer1K:     0.001,
		CompletionPricePer1K: 0.002,
	},
	{
		ID:                   "gpt-4-turbo",
		ContextLimit:         128000,
		PromptPricePer1K:     0.01,
		CompletionPricePer1K: 0.03,
	},
}

// DefaultTopics lists the escape rooms on offer, one knowledge partition each.
var DefaultTopics = []string{
	"The Lost Estate",
	"The Intervention",
	"Temple of Kami",
	"Infinity",
	"Narcos",
}

// GeneralKeywords route generic questions to the default partition.
var GeneralKeywords = []string{
	"phone",
	"discount",
	"open",
	"hours",
	"directions",
	"booking",
	"accessib",
	"parking",
	"price",
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/escapecenter/conciergebot/internal/config"
	"github.com/escapecenter/conciergebot/internal/domain"
)

// Canned replies for terminal, expected outcomes.
const (
	ReplyDuplicate     = "One moment... it looks like I already answered that 😊"
	ReplyNoKnowledge   = "Sorry, we could not find any relevant information for that."
	ReplyTooLong       = "⚠️ Your question and its context are too long even for our largest model. Please try shortening it."
	ReplyProviderError = "Sorry, something went wrong while preparing your answer. Please try again in a moment."
	ReplyReset         = "The conversation has been reset ✅"
)

const faqSource = "faq"

// TokenCounter estimates token consumption for a message list under a
// model's encoding.
type TokenCounter interface {
	Estimate(turns []domain.ConversationTurn, model string) int
}

// ChatLogger is the append-only log sink for answered questions.
type ChatLogger interface {
	Record(ctx context.Context, entry domain.LogEntry) error
}

// Orchestrator is the engine's entry point: dedup check, FAQ
// short-circuit, context selection, budget and tier decision, the
// provider call, and persistence of history and usage.
type Orchestrator struct {
	cfg       *config.Config
	sessions  *SessionStore
	selector  *ContextSelector
	knowledge *KnowledgeCache
	faq       *FAQIndex
	counter   TokenCounter
	provider  CompletionProvider
	chatLog   ChatLogger
	tiers     []domain.ModelTier
}

// OrchestratorDeps contains all collaborators required to construct an
// Orchestrator.
type OrchestratorDeps struct {
	Cfg       *config.Config
	Sessions  *SessionStore
	Selector  *ContextSelector
	Knowledge *KnowledgeCache
	FAQ       *FAQIndex
	Counter   TokenCounter
	Provider  CompletionProvider
	ChatLog   ChatLogger
	Tiers     []domain.ModelTier
}

func NewOrchestrator(deps OrchestratorDeps) *Orchestrator {
	return &Orchestrator{
		cfg:       deps.Cfg,
		sessions:  deps.Sessions,
		selector:  deps.Selector,
		knowledge: deps.Knowledge,
		faq:       deps.FAQ,
		counter:   deps.Counter,
		provider:  deps.Provider,
		chatLog:   deps.ChatLog,
		tiers:     deps.Tiers,
	}
}

// Answer processes one inbound question and always returns a reply.
func (o *Orchestrator) Answer(ctx context.Context, userID, question string) string {
	if o.sessions.IsDuplicate(ctx, userID, question) {
		return ReplyDuplicate
	}

	if match, ok := o.faq.Match(ctx, question); ok {
		o.record(ctx, domain.LogEntry{
			UserID:   userID,
			Source:   faqSource,
			Question: truncate(question, config.MaxLoggedTextLen),
			Answer:   truncate(match.Entry.Answer, config.MaxLoggedTextLen),
			FAQMatch: true,
		})
		return match.Entry.Answer
	}

	partitions := o.selector.Select(ctx, userID, question)
	knowledgeText := o.collectKnowledge(ctx, partitions)

	if o.cfg.RelevanceCheck && knowledgeText != "" && !SharesVocabulary(question, knowledgeText) {
		if fallback := o.knowledge.Text(ctx, o.cfg.DefaultPartition); strings.TrimSpace(fallback) != "" {
			partitions = []string{o.cfg.DefaultPartition}
			knowledgeText = fallback
		}
	}

	if knowledgeText == "" {
		return ReplyNoKnowledge
	}

	history := o.sessions.History(ctx, userID)
	messages := make([]domain.ConversationTurn, 0, len(history)+2)
	messages = append(messages, domain.ConversationTurn{
		Role:    domain.RoleSystem,
		Content: BuildSystemPrompt(knowledgeText),
	})
	messages = append(messages, history...)
	messages = append(messages, domain.ConversationTurn{
		Role:    domain.RoleUser,
		Content: question,
	})

	tier, promptTokens, ok := o.pickTier(messages)
	if !ok {
		return ReplyTooLong
	}

	reqCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	result, err := o.provider.Complete(reqCtx, tier, messages, config.DefaultTemperature, config.CompletionBudget)
	if err != nil {
		slog.Error("completion request", "user_id", userID, "model", tier.ID, "error", err)
		return ReplyProviderError
	}

	answer := CleanAnswer(result.Text)

	o.sessions.Append(ctx, userID,
		domain.ConversationTurn{Role: domain.RoleUser, Content: question},
		domain.ConversationTurn{Role: domain.RoleAssistant, Content: answer},
	)

	if result.PromptTokens > 0 {
		promptTokens = result.PromptTokens
	}
	completionTokens := result.CompletionTokens
	if completionTokens == 0 {
		completionTokens = config.CompletionBudget
	}
	o.sessions.AccumulateUsage(ctx, userID, promptTokens, completionTokens)

	cost := CalculateCost(promptTokens, completionTokens, tier, o.cfg.DisplayCurrencyRate)
	o.record(ctx, domain.LogEntry{
		UserID:           userID,
		Source:           tier.ID,
		Question:         truncate(question, config.MaxLoggedTextLen),
		Answer:           truncate(answer, config.MaxLoggedTextLen),
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		Cost:             cost,
		Partitions:       partitions,
	})

	return answer
}

// Reset clears the user's history and usage counters.
func (o *Orchestrator) Reset(ctx context.Context, userID string) error {
	return o.sessions.Reset(ctx, userID)
}

// UsageReport formats the user's cumulative token usage and its estimated
// cost in the display currency.
func (o *Orchestrator) UsageReport(ctx context.Context, userID string) string {
	usage := o.sessions.Usage(ctx, userID)
	cost := CumulativeCost(usage, o.tiers[0], o.cfg.DisplayCurrencyRate)
	return fmt.Sprintf("🔢 Total tokens: %d\n💰 Estimated cost: %s%s",
		usage.TotalTokens, o.cfg.DisplayCurrencySymbol, cost.Round(2).StringFixed(2))
}

// pickTier walks the tier list cheapest-first, re-estimating the prompt
// under each tier's encoding, and reports failure when even the last tier
// cannot hold the context plus the completion budget.
func (o *Orchestrator) pickTier(messages []domain.ConversationTurn) (domain.ModelTier, int, bool) {
	var tier domain.ModelTier
	var promptTokens int
	for _, t := range o.tiers {
		tier = t
		promptTokens = o.counter.Estimate(messages, t.ID)
		if promptTokens+config.CompletionBudget <= t.ContextLimit {
			return tier, promptTokens, true
		}
	}
	return tier, promptTokens, false
}

func (o *Orchestrator) collectKnowledge(ctx context.Context, partitions []string) string {
	var blocks []string
	for _, name := range partitions {
		if text := o.knowledge.Text(ctx, name); strings.TrimSpace(text) != "" {
			blocks = append(blocks, text)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (o *Orchestrator) record(ctx context.Context, entry domain.LogEntry) {
	entry.CreatedAt = time.Now()
	if err := o.chatLog.Record(ctx, entry); err != nil {
		slog.Warn("record conversation log", "user_id", entry.UserID, "error", err)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

package domain

// Conversation roles as sent to the completion provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is a single message in a user's conversation history.
// Turns are immutable once created and append-only within a session.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage holds a user's cumulative token counters. Counters only grow;
// they are cleared solely by the reset command.
type Usage struct {
	PromptTokens     uint64
	CompletionTokens uint64
	TotalTokens      uint64
}

// CompletionResult is the provider's reply together with the token usage
// it reported. Token fields are zero when the provider omits usage data.
type CompletionResult struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}

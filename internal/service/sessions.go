package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/escapecenter/conciergebot/internal/config"
	"github.com/escapecenter/conciergebot/internal/domain"
	"github.com/jellydator/ttlcache/v3"
)

// KV is the durable key-value store shared by all bot processes. Keys
// carry their own expiry. Get reports absence separately from failure.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	IncrBy(ctx context.Context, key string, delta int64) error
	Delete(ctx context.Context, keys ...string) error
}

// SessionStore keeps per-user conversation state across two tiers: a fast
// process-local cache and the durable shared store. Reads prefer local and
// fall back to durable; writes go through to both. Durable-store failures
// never propagate, the local copy carries the session until restart.
type SessionStore struct {
	kv         KV
	local      *ttlcache.Cache[string, []domain.ConversationTurn]
	dedupTTL   time.Duration
	sessionTTL time.Duration
}

func NewSessionStore(kv KV, localTTL, dedupTTL, sessionTTL time.Duration) *SessionStore {
	local := ttlcache.New(
		ttlcache.WithTTL[string, []domain.ConversationTurn](localTTL),
		ttlcache.WithCapacity[string, []domain.ConversationTurn](config.SessionCacheCapacity),
		ttlcache.WithDisableTouchOnHit[string, []domain.ConversationTurn](),
	)
	return &SessionStore{
		kv:         kv,
		local:      local,
		dedupTTL:   dedupTTL,
		sessionTTL: sessionTTL,
	}
}

func chatKey(userID string) string        { return "chat:" + userID }
func lastMsgKey(userID string) string     { return "last_msg:" + userID }
func lastSheetKey(userID string) string   { return "last_sheet:" + userID }
func tokenSumKey(userID string) string    { return "token_sum:" + userID }
func tokenInputKey(userID string) string  { return "token_input:" + userID }
func tokenOutputKey(userID string) string { return "token_output:" + userID }

// History returns the user's conversation history, at most the last
// HistoryLimit turns. An unreadable durable copy reads as empty.
func (s *SessionStore) History(ctx context.Context, userID string) []domain.ConversationTurn {
	if item := s.local.Get(chatKey(userID)); item != nil {
		return item.Value()
	}

	raw, ok, err := s.kv.Get(ctx, chatKey(userID))
	if err != nil {
		slog.Warn("read chat history", "user_id", userID, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var turns []domain.ConversationTurn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		slog.Warn("decode chat history", "user_id", userID, "error", err)
		return nil
	}

	turns = trimHistory(turns)
	s.local.Set(chatKey(userID), turns, ttlcache.DefaultTTL)
	return turns
}

// Append adds turns to the user's history, truncates to the last
// HistoryLimit, and writes through to both tiers.
func (s *SessionStore) Append(ctx context.Context, userID string, turns ...domain.ConversationTurn) {
	history := trimHistory(append(s.History(ctx, userID), turns...))
	s.local.Set(chatKey(userID), history, ttlcache.DefaultTTL)

	payload, err := json.Marshal(history)
	if err != nil {
		slog.Warn("encode chat history", "user_id", userID, "error", err)
		return
	}
	if err := s.kv.Set(ctx, chatKey(userID), string(payload), s.sessionTTL); err != nil {
		slog.Warn("persist chat history", "user_id", userID, "error", err)
	}
}

// IsDuplicate reports whether the question equals the user's last inbound
// message. The last-message value is refreshed on every call, duplicate
// or not.
func (s *SessionStore) IsDuplicate(ctx context.Context, userID, question string) bool {
	previous, ok, err := s.kv.Get(ctx, lastMsgKey(userID))
	if err != nil {
		slog.Warn("read last message", "user_id", userID, "error", err)
	}
	duplicate := err == nil && ok && previous == question

	if err := s.kv.Set(ctx, lastMsgKey(userID), question, s.dedupTTL); err != nil {
		slog.Warn("store last message", "user_id", userID, "error", err)
	}
	return duplicate
}

// AccumulateUsage increments the user's durable token counters.
func (s *SessionStore) AccumulateUsage(ctx context.Context, userID string, promptTokens, completionTokens int) {
	increments := map[string]int64{
		tokenInputKey(userID):  int64(promptTokens),
		tokenOutputKey(userID): int64(completionTokens),
		tokenSumKey(userID):    int64(promptTokens + completionTokens),
	}
	for key, delta := range increments {
		if err := s.kv.IncrBy(ctx, key, delta); err != nil {
			slog.Warn("accumulate usage", "user_id", userID, "key", key, "error", err)
		}
	}
}

// Usage reads the user's cumulative token counters; absent counters read
// as zero.
func (s *SessionStore) Usage(ctx context.Context, userID string) domain.Usage {
	return domain.Usage{
		PromptTokens:     s.counter(ctx, tokenInputKey(userID)),
		CompletionTokens: s.counter(ctx, tokenOutputKey(userID)),
		TotalTokens:      s.counter(ctx, tokenSumKey(userID)),
	}
}

func (s *SessionStore) counter(ctx context.Context, key string) uint64 {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		slog.Warn("read usage counter", "key", key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		slog.Warn("parse usage counter", "key", key, "error", err)
		return 0
	}
	return value
}

// Reset deletes the user's history, last-message marker, and usage
// counters. The sticky partition and the identity itself persist.
func (s *SessionStore) Reset(ctx context.Context, userID string) error {
	s.local.Delete(chatKey(userID))
	return s.kv.Delete(ctx,
		chatKey(userID),
		lastMsgKey(userID),
		tokenSumKey(userID),
		tokenInputKey(userID),
		tokenOutputKey(userID),
	)
}

// LastPartition returns the user's sticky partition, if recorded.
func (s *SessionStore) LastPartition(ctx context.Context, userID string) (string, bool) {
	name, ok, err := s.kv.Get(ctx, lastSheetKey(userID))
	if err != nil {
		slog.Warn("read sticky partition", "user_id", userID, "error", err)
		return "", false
	}
	return name, ok
}

// SetLastPartition records the user's sticky partition.
func (s *SessionStore) SetLastPartition(ctx context.Context, userID, name string) {
	if err := s.kv.Set(ctx, lastSheetKey(userID), name, s.sessionTTL); err != nil {
		slog.Warn("store sticky partition", "user_id", userID, "error", err)
	}
}

func trimHistory(turns []domain.ConversationTurn) []domain.ConversationTurn {
	if len(turns) > config.HistoryLimit {
		return turns[len(turns)-config.HistoryLimit:]
	}
	return turns
}

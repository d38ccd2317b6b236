package service

import (
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/escapecenter/conciergebot/internal/config"
	"github.com/escapecenter/conciergebot/internal/domain"
	"github.com/pkoukk/tiktoken-go"
)

// fallbackCharsPerToken approximates token counts when no encoding is
// available for a model. Overestimating is safer than underestimating,
// so the divisor stays conservative.
const fallbackCharsPerToken = 3

type encoder interface {
	Encode(text string, allowedSpecial, disallowedSpecial []string) []int
}

// TokenEstimator approximates how many tokens a message list will consume
// for a given model. Encodings differ across model families, so the
// estimator resolves one per model and caches it.
type TokenEstimator struct {
	mu       sync.Mutex
	encoders map[string]encoder
	load     func(model string) (encoder, error)
}

func NewTokenEstimator() *TokenEstimator {
	return &TokenEstimator{
		encoders: make(map[string]encoder),
		load: func(model string) (encoder, error) {
			return tiktoken.EncodingForModel(model)
		},
	}
}

// Estimate returns the token count for the message list under the given
// model's encoding: a fixed per-message overhead plus the encoded content
// length, plus a constant overhead for the whole conversation.
func (e *TokenEstimator) Estimate(turns []domain.ConversationTurn, model string) int {
	enc := e.encoderFor(model)

	total := config.ConversationTokenOverhead
	for _, turn := range turns {
		total += config.MessageTokenOverhead
		if enc != nil {
			total += len(enc.Encode(turn.Content, nil, nil))
		} else {
			total += utf8.RuneCountInString(turn.Content)/fallbackCharsPerToken + 1
		}
	}
	return total
}

func (e *TokenEstimator) encoderFor(model string) encoder {
	e.mu.Lock()
	defer e.mu.Unlock()

	if enc, ok := e.encoders[model]; ok {
		return enc
	}
	enc, err := e.load(model)
	if err != nil {
		slog.Warn("resolve token encoding", "model", model, "error", err)
		return nil
	}
	e.encoders[model] = enc
	return enc
}

package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/escapecenter/conciergebot/internal/domain"
)

// wordEncoder maps every whitespace-separated word to one token.
type wordEncoder struct{}

func (wordEncoder) Encode(text string, _, _ []string) []int {
	return make([]int, len(strings.Fields(text)))
}

func newStubEstimator(loads *int, loadErr error) *TokenEstimator {
	est := NewTokenEstimator()
	est.load = func(model string) (encoder, error) {
		if loads != nil {
			*loads++
		}
		if loadErr != nil {
			return nil, loadErr
		}
		return wordEncoder{}, nil
	}
	return est
}

func TestEstimateOverheads(t *testing.T) {
	est := newStubEstimator(nil, nil)

	turns := []domain.ConversationTurn{
		{Role: domain.RoleSystem, Content: "one two three"},
		{Role: domain.RoleUser, Content: "four five"},
	}

	// 2 conversation + 2×4 message overhead + 3 + 2 content tokens.
	if got := est.Estimate(turns, "gpt-3.5-turbo"); got != 15 {
		t.Errorf("Estimate = %d, want 15", got)
	}
}

func TestEstimateEmptyConversation(t *testing.T) {
	est := newStubEstimator(nil, nil)
	if got := est.Estimate(nil, "gpt-3.5-turbo"); got != 2 {
		t.Errorf("Estimate = %d, want just the conversation overhead", got)
	}
}

func TestEstimateCachesEncoderPerModel(t *testing.T) {
	loads := 0
	est := newStubEstimator(&loads, nil)

	turns := []domain.ConversationTurn{{Role: domain.RoleUser, Content: "hello"}}
	est.Estimate(turns, "gpt-3.5-turbo")
	est.Estimate(turns, "gpt-3.5-turbo")
	est.Estimate(turns, "gpt-4-turbo")

	if loads != 2 {
		t.Errorf("encoder loads = %d, want 2 (one per model)", loads)
	}
}

func TestEstimateFallbackWithoutEncoding(t *testing.T) {
	est := newStubEstimator(nil, errors.New("unknown model"))

	turns := []domain.ConversationTurn{{Role: domain.RoleUser, Content: "abcdef"}}

	// 2 + 4 + (6/3 + 1) under the character heuristic.
	if got := est.Estimate(turns, "mystery-model"); got != 9 {
		t.Errorf("Estimate = %d, want 9", got)
	}
}

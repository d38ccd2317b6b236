package service

import (
	"context"
	"strings"
	"unicode"
)

// StickyStore remembers the last partition a user's question resolved to,
// so ambiguous follow-ups stay on the topic just discussed.
type StickyStore interface {
	LastPartition(ctx context.Context, userID string) (string, bool)
	SetLastPartition(ctx context.Context, userID, name string)
}

// ContextSelector maps a raw question to the knowledge partitions relevant
// to it. Precedence: named topic match, then general-inquiry keywords, then
// the user's sticky partition, then the default partition.
type ContextSelector struct {
	topics           []string
	keywords         []string
	defaultPartition string
	sticky           StickyStore
}

func NewContextSelector(topics, keywords []string, defaultPartition string, sticky StickyStore) *ContextSelector {
	return &ContextSelector{
		topics:           topics,
		keywords:         keywords,
		defaultPartition: defaultPartition,
		sticky:           sticky,
	}
}

// Select returns the de-duplicated set of partitions for a question.
// A topic match updates the user's sticky partition; a keyword match
// leaves it untouched.
func (s *ContextSelector) Select(ctx context.Context, userID, question string) []string {
	lower := strings.ToLower(question)

	var matched []string
	for _, topic := range s.topics {
		if strings.Contains(lower, strings.ToLower(topic)) {
			matched = append(matched, topic)
		}
	}
	if len(matched) > 0 {
		s.sticky.SetLastPartition(ctx, userID, matched[0])
		return dedupNames(matched)
	}

	for _, keyword := range s.keywords {
		if strings.Contains(lower, keyword) {
			return []string{s.defaultPartition}
		}
	}

	if last, ok := s.sticky.LastPartition(ctx, userID); ok && last != "" {
		return []string{last}
	}
	return []string{s.defaultPartition}
}

func dedupNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := names[:0]
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}

// SharesVocabulary reports whether the partition text contains at least one
// content word from the question. Used as an optional relevance check on
// top of the base selection algorithm.
func SharesVocabulary(question, text string) bool {
	lowerText := strings.ToLower(text)
	for _, word := range contentWords(question) {
		if strings.Contains(lowerText, word) {
			return true
		}
	}
	return false
}

func contentWords(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var words []string
	for _, f := range fields {
		if len([]rune(f)) >= 3 {
			words = append(words, f)
		}
	}
	return words
}

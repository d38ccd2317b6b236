package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/escapecenter/conciergebot/internal/domain"
)

// FAQIndex matches inbound questions against a pre-authored FAQ table
// using a normalized edit-distance similarity. Entries load lazily from a
// two-column knowledge partition and stay fixed for the process lifetime;
// a failed load is retried on the next call instead of being memoized.
type FAQIndex struct {
	source    KnowledgeSource
	partition string
	threshold float64
	metric    *metrics.Levenshtein

	mu      sync.Mutex
	loaded  bool
	entries []domain.FAQEntry
}

func NewFAQIndex(source KnowledgeSource, partition string, threshold float64) *FAQIndex {
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false
	return &FAQIndex{
		source:    source,
		partition: partition,
		threshold: threshold,
		metric:    metric,
	}
}

// Match returns the best-matching FAQ entry when its similarity to the
// question reaches the threshold.
func (f *FAQIndex) Match(ctx context.Context, question string) (domain.FAQMatch, bool) {
	entries := f.load(ctx)
	if len(entries) == 0 {
		return domain.FAQMatch{}, false
	}

	best := domain.FAQMatch{Score: -1}
	for _, entry := range entries {
		score := strutil.Similarity(question, entry.Question, f.metric)
		if score > best.Score {
			best = domain.FAQMatch{Entry: entry, Score: score}
		}
	}

	if best.Score < f.threshold {
		return domain.FAQMatch{}, false
	}
	return best, true
}

func (f *FAQIndex) load(ctx context.Context) []domain.FAQEntry {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loaded {
		return f.entries
	}

	rows, err := f.source.Rows(ctx, f.partition)
	if err != nil {
		slog.Warn("load faq table", "partition", f.partition, "error", err)
		return nil
	}

	entries := make([]domain.FAQEntry, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		question := strings.TrimSpace(row[0])
		answer := strings.TrimSpace(row[1])
		if question == "" || answer == "" {
			continue
		}
		entries = append(entries, domain.FAQEntry{Question: question, Answer: answer})
	}

	f.entries = entries
	f.loaded = true
	slog.Info("faq table loaded", "entries", len(entries))
	return f.entries
}

package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/escapecenter/conciergebot/internal/config"
	"github.com/jellydator/ttlcache/v3"
)

// KnowledgeSource provides raw tabular rows for a named partition.
type KnowledgeSource interface {
	Rows(ctx context.Context, partition string) ([][]string, error)
}

// KnowledgeCache serves rendered partition text, refreshing entries older
// than the configured TTL. Fetch failures are treated as "no knowledge
// available": they yield an empty string and are never cached.
type KnowledgeCache struct {
	source KnowledgeSource
	cache  *ttlcache.Cache[string, string]
}

func NewKnowledgeCache(source KnowledgeSource, ttl time.Duration) *KnowledgeCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, string](ttl),
		ttlcache.WithCapacity[string, string](config.KnowledgeCacheCapacity),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	return &KnowledgeCache{source: source, cache: cache}
}

// Text returns the rendered text of a partition, from cache when fresh.
func (c *KnowledgeCache) Text(ctx context.Context, name string) string {
	if item := c.cache.Get(name); item != nil {
		return item.Value()
	}

	rows, err := c.source.Rows(ctx, name)
	if err != nil {
		slog.Warn("fetch knowledge partition", "partition", name, "error", err)
		return ""
	}

	text := renderPartition(name, rows)
	c.cache.Set(name, text, ttlcache.DefaultTTL)
	return text
}

func renderPartition(name string, rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " | ")
	}
	return "-- " + name + " --\n" + strings.Join(lines, "\n")
}

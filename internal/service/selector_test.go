package service

import (
	"context"
	"reflect"
	"testing"
)

type fakeSticky struct {
	last map[string]string
}

func newFakeSticky() *fakeSticky {
	return &fakeSticky{last: make(map[string]string)}
}

func (f *fakeSticky) LastPartition(_ context.Context, userID string) (string, bool) {
	name, ok := f.last[userID]
	return name, ok
}

func (f *fakeSticky) SetLastPartition(_ context.Context, userID, name string) {
	f.last[userID] = name
}

var testTopics = []string{"The Lost Estate", "Narcos", "Infinity"}

var testKeywords = []string{"phone", "hours", "parking", "price"}

func newTestSelector(sticky StickyStore) *ContextSelector {
	return NewContextSelector(testTopics, testKeywords, "General Info", sticky)
}

func TestSelectTopicMatch(t *testing.T) {
	sticky := newFakeSticky()
	selector := newTestSelector(sticky)
	ctx := context.Background()

	got := selector.Select(ctx, "u1", "Is Narcos scary for kids?")
	if !reflect.DeepEqual(got, []string{"Narcos"}) {
		t.Errorf("Select = %v, want [Narcos]", got)
	}
	if sticky.last["u1"] != "Narcos" {
		t.Errorf("sticky = %q, want Narcos", sticky.last["u1"])
	}
}

func TestSelectTopicMatchCaseInsensitive(t *testing.T) {
	selector := newTestSelector(newFakeSticky())

	got := selector.Select(context.Background(), "u1", "is narcos open tonight?")
	if !reflect.DeepEqual(got, []string{"Narcos"}) {
		t.Errorf("Select = %v, want [Narcos]", got)
	}
}

func TestSelectMultipleTopics(t *testing.T) {
	sticky := newFakeSticky()
	selector := newTestSelector(sticky)

	got := selector.Select(context.Background(), "u1", "Which is harder, Narcos or Infinity?")
	if len(got) != 2 {
		t.Fatalf("Select = %v, want two partitions", got)
	}
	// Sticky memory records the first match only.
	if sticky.last["u1"] != "Narcos" {
		t.Errorf("sticky = %q, want Narcos", sticky.last["u1"])
	}
}

func TestSelectKeywordLeavesStickyUntouched(t *testing.T) {
	sticky := newFakeSticky()
	sticky.last["u1"] = "Infinity"
	selector := newTestSelector(sticky)

	got := selector.Select(context.Background(), "u1", "where can I find parking?")
	if !reflect.DeepEqual(got, []string{"General Info"}) {
		t.Errorf("Select = %v, want [General Info]", got)
	}
	if sticky.last["u1"] != "Infinity" {
		t.Errorf("sticky = %q, want untouched Infinity", sticky.last["u1"])
	}
}

func TestSelectStickyFallback(t *testing.T) {
	sticky := newFakeSticky()
	selector := newTestSelector(sticky)
	ctx := context.Background()

	selector.Select(ctx, "u1", "Tell me about The Lost Estate")

	got := selector.Select(ctx, "u1", "and on weekends?")
	if !reflect.DeepEqual(got, []string{"The Lost Estate"}) {
		t.Errorf("Select = %v, want sticky [The Lost Estate]", got)
	}
}

func TestSelectDefaultWithoutSticky(t *testing.T) {
	selector := newTestSelector(newFakeSticky())

	got := selector.Select(context.Background(), "u1", "and on weekends?")
	if !reflect.DeepEqual(got, []string{"General Info"}) {
		t.Errorf("Select = %v, want [General Info]", got)
	}
}

func TestSelectStickyIsolatedPerUser(t *testing.T) {
	sticky := newFakeSticky()
	selector := newTestSelector(sticky)
	ctx := context.Background()

	selector.Select(ctx, "u1", "Tell me about Infinity")

	got := selector.Select(ctx, "u2", "and on weekends?")
	if !reflect.DeepEqual(got, []string{"General Info"}) {
		t.Errorf("Select for u2 = %v, want [General Info]", got)
	}
}

func TestSharesVocabulary(t *testing.T) {
	tests := []struct {
		name     string
		question string
		text     string
		want     bool
	}{
		{"overlap", "what is the price for four players?", "-- Narcos --\nPlayers | 2-6\nPrice | 100 per person", true},
		{"no overlap", "do you allow dogs?", "-- Narcos --\nPlayers | 2-6\nPrice | 100 per person", false},
		{"short words ignored", "is it on?", "on and on", false},
		{"empty text", "what is the price?", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SharesVocabulary(tt.question, tt.text); got != tt.want {
				t.Errorf("SharesVocabulary(%q, ...) = %v, want %v", tt.question, got, tt.want)
			}
		})
	}
}

package service

import (
	"context"
	"testing"
)

func newTestFAQ(rows [][]string) (*FAQIndex, *fakeSource) {
	source := newFakeSource(map[string][][]string{"FAQ": rows})
	return NewFAQIndex(source, "FAQ", 0.65), source
}

func TestFAQExactMatch(t *testing.T) {
	faq, _ := newTestFAQ([][]string{
		{"What are your opening hours?", "We are open Sunday to Thursday, 10:00-23:00."},
		{"Do you have parking?", "Yes, free parking is available on site."},
	})

	match, ok := faq.Match(context.Background(), "What are your opening hours?")
	if !ok {
		t.Fatal("expected a match for the exact FAQ question")
	}
	if match.Entry.Answer != "We are open Sunday to Thursday, 10:00-23:00." {
		t.Errorf("answer = %q, want the stored FAQ answer verbatim", match.Entry.Answer)
	}
	if match.Score < 0.99 {
		t.Errorf("score = %f, want ~1.0 for an exact match", match.Score)
	}
}

func TestFAQApproximateMatch(t *testing.T) {
	faq, _ := newTestFAQ([][]string{
		{"What are your opening hours?", "We are open Sunday to Thursday, 10:00-23:00."},
	})

	match, ok := faq.Match(context.Background(), "what are you opening hours")
	if !ok {
		t.Fatal("expected a match within the similarity threshold")
	}
	if match.Entry.Question != "What are your opening hours?" {
		t.Errorf("matched question = %q", match.Entry.Question)
	}
}

func TestFAQBelowThreshold(t *testing.T) {
	faq, _ := newTestFAQ([][]string{
		{"What are your opening hours?", "We are open Sunday to Thursday, 10:00-23:00."},
	})

	if _, ok := faq.Match(context.Background(), "do you sell pizza?"); ok {
		t.Error("unrelated question matched an FAQ entry")
	}
}

func TestFAQLoadsOnce(t *testing.T) {
	faq, source := newTestFAQ([][]string{
		{"Do you have parking?", "Yes, free parking is available on site."},
	})
	ctx := context.Background()

	faq.Match(ctx, "do you have parking")
	faq.Match(ctx, "do you have parking")

	if got := source.fetchCount("FAQ"); got != 1 {
		t.Errorf("fetch count = %d, want 1 (table memoized)", got)
	}
}

func TestFAQSkipsMalformedRows(t *testing.T) {
	faq, _ := newTestFAQ([][]string{
		{"only a question"},
		{"", "answer without question"},
		{"Do you have parking?", "Yes, free parking is available on site."},
	})

	match, ok := faq.Match(context.Background(), "Do you have parking?")
	if !ok {
		t.Fatal("valid row not matched")
	}
	if match.Entry.Answer != "Yes, free parking is available on site." {
		t.Errorf("answer = %q", match.Entry.Answer)
	}
}

func TestFAQLoadFailureRetries(t *testing.T) {
	source := newFakeSource(nil) // every load fails
	faq := NewFAQIndex(source, "FAQ", 0.65)
	ctx := context.Background()

	if _, ok := faq.Match(ctx, "anything"); ok {
		t.Error("match returned without a loaded table")
	}
	faq.Match(ctx, "anything")

	if got := source.fetchCount("FAQ"); got != 2 {
		t.Errorf("fetch count = %d, want 2 (failed load retried)", got)
	}
}

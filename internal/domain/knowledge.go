package domain

// FAQEntry is a pre-authored question/answer pair.
type FAQEntry struct {
	Question string
	Answer   string
}

// FAQMatch is the best approximate match for an inbound question.
type FAQMatch struct {
	Entry FAQEntry
	Score float64
}

package domain

import "strings"

// Sentiment is the monetary-policy stance classification produced by the
// analyst.
type Sentiment string

// Sentiment labels. HAWKISH favours tighter policy, DOVISH looser policy.
const (
	SentimentHawkish Sentiment = "HAWKISH"
	SentimentDovish  Sentiment = "DOVISH"
	SentimentNeutral Sentiment = "NEUTRAL"
	SentimentUnknown Sentiment = "UNKNOWN"
)

// Analysis is the result of answering one question against the indexed
// minutes.
type Analysis struct {
	// Question is the user's question verbatim.
	Question string

	// Answer is the model's generated text verbatim.
	Answer string

	// Sentiment is the label detected in the answer, or SentimentUnknown
	// when the model did not state one.
	Sentiment Sentiment

	// ContextChunks is the retrieved context the answer was conditioned
	// on, in rank order.
	ContextChunks []string
}

// DetectSentiment scans generated text for the first stated sentiment
// label. The scan is case-insensitive and favours the order the labels
// appear in the text, not a fixed priority.
func DetectSentiment(text string) Sentiment {
	upper := strings.ToUpper(text)

	first := SentimentUnknown
	firstIdx := len(upper) + 1
	for _, s := range []Sentiment{SentimentHawkish, SentimentDovish, SentimentNeutral} {
		if idx := strings.Index(upper, string(s)); idx >= 0 && idx < firstIdx {
			first = s
			firstIdx = idx
		}
	}
	return first
}

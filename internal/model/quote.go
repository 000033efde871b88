package model

import "time"

// Quote is a citable extract from a source transcript. Immutable after
// creation except for deletion by id. SourceID is a back-reference, not an
// ownership link; deleting the source leaves its quotes intact.
type Quote struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	Citation     string    `json:"citation"`
	DeepLink     string    `json:"deepLink"`
	Timestamp    float64   `json:"timestamp"`
	SourceID     string    `json:"sourceId"`
	SelectedText string    `json:"selectedText"`
	CreatedAt    time.Time `json:"createdAt"`
}

// QuoteRequest is the API request body for extracting a quote: an inclusive
// index range over the source's cleaned token sequence.
type QuoteRequest struct {
	SourceID   string `json:"sourceId"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

// QuoteDeleteRequest is the API request body for removing quotes.
type QuoteDeleteRequest struct {
	QuoteIDs []string `json:"quoteIds"`
}

// StatsResponse is aggregate collection statistics.
type StatsResponse struct {
	TotalSources    int            `json:"totalSources"`
	SourcesByStatus map[string]int `json:"sourcesByStatus"`
	TotalQuotes     int            `json:"totalQuotes"`
}

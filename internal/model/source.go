package model

import "time"

// SourceStatus is the lifecycle state of a video source.
type SourceStatus string

const (
	StatusPending      SourceStatus = "pending"
	StatusMetadata     SourceStatus = "metadata"
	StatusTranscribing SourceStatus = "transcribing"
	StatusCompleted    SourceStatus = "completed"
	StatusError        SourceStatus = "error"
)

// VideoMetadata describes a scraped video. Produced once by the metadata
// fetch and never mutated afterwards.
type VideoMetadata struct {
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Duration    int64  `json:"duration"`
	PublishDate string `json:"publishDate"` // YYYYMMDD, may be empty or malformed
	Views       int64  `json:"views"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
}

// Source represents one video being turned into citable text.
type Source struct {
	ID         string               `json:"id"`
	URL        string               `json:"url"`
	Status     SourceStatus         `json:"status"`
	Progress   int                  `json:"progress"`
	Metadata   *VideoMetadata       `json:"metadata,omitempty"`
	Transcript *TranscriptionResult `json:"transcript,omitempty"`
	Error      *string              `json:"error,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// SourceUpdate is a partial update applied to a source in a single
// statement. Nil fields are left untouched.
type SourceUpdate struct {
	Status     *SourceStatus
	Progress   *int
	Metadata   *VideoMetadata
	Transcript *TranscriptionResult
	Error      *string
}

// SourceRequest is the API request body for adding a source.
type SourceRequest struct {
	URL string `json:"url"`
}

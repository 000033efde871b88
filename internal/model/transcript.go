package model

// TranscriptToken is a single transcribed word with timing and an optional
// speaker label. Sequences are ordered by Start ascending.
type TranscriptToken struct {
	Text    string  `json:"text"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker,omitempty"`
}

// TranscriptionResult is the output of a transcription call.
type TranscriptionResult struct {
	Tokens   []TranscriptToken `json:"words"`
	FullText string            `json:"fullText"`
}

// TranscriptResponse is the API response for transcript lookups: the cleaned
// token sequence, its sentence grouping, and the index of the token active
// at the requested playback time (-1 when none).
type TranscriptResponse struct {
	SourceID    string              `json:"sourceId"`
	Tokens      []TranscriptToken   `json:"tokens"`
	Sentences   [][]TranscriptToken `json:"sentences"`
	ActiveIndex int                 `json:"activeIndex"`
}

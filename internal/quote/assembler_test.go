package quote

import (
	"errors"
	"testing"

	"github.com/DarwinQVO/quotify/internal/model"
	"github.com/DarwinQVO/quotify/internal/transcript"
)

func sampleTokens() []model.TranscriptToken {
	return []model.TranscriptToken{
		{Text: "the", Start: 10.2, End: 10.4},
		{Text: "quick", Start: 10.5, End: 10.8},
		{Text: "brown", Start: 10.9, End: 11.2},
		{Text: "fox", Start: 11.3, End: 11.6},
	}
}

func sampleMeta() *model.VideoMetadata {
	return &model.VideoMetadata{
		Channel:     "Test Channel",
		PublishDate: "20240115",
		URL:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}
}

func TestAssemble(t *testing.T) {
	link := func(url string, ts float64) (string, error) {
		return "https://youtu.be/dQw4w9WgXcQ?t=10", nil
	}
	q, err := Assemble(transcript.Range{Start: 0, End: 3}, sampleTokens(), sampleMeta(), "src-1", link)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if q.Text != "the quick brown fox" {
		t.Errorf("text = %q", q.Text)
	}
	if q.Citation != "Test Channel, (Jan 2024)" {
		t.Errorf("citation = %q", q.Citation)
	}
	if q.Timestamp != 10.2 {
		t.Errorf("timestamp = %v, want 10.2", q.Timestamp)
	}
	if q.DeepLink != "https://youtu.be/dQw4w9WgXcQ?t=10" {
		t.Errorf("deep link = %q", q.DeepLink)
	}
	if q.SourceID != "src-1" {
		t.Errorf("source id = %q", q.SourceID)
	}
}

func TestAssembleSpeakerPrecedence(t *testing.T) {
	tokens := sampleTokens()
	tokens[0].Speaker = "Speaker 2"
	q, err := Assemble(transcript.Range{Start: 0, End: 2}, tokens, sampleMeta(), "src-1", nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if q.Citation != "Speaker 2, (Jan 2024)" {
		t.Errorf("citation = %q, want token speaker attribution", q.Citation)
	}
}

func TestAssembleUnknownSpeaker(t *testing.T) {
	q, err := Assemble(transcript.Range{Start: 0, End: 2}, sampleTokens(), &model.VideoMetadata{PublishDate: "20240115"}, "src-1", nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if q.Citation != "Unknown Speaker, (Jan 2024)" {
		t.Errorf("citation = %q", q.Citation)
	}
}

func TestAssembleDeepLinkFallsBackToSourceURL(t *testing.T) {
	link := func(url string, ts float64) (string, error) {
		return "", errors.New("not a youtube url")
	}
	q, err := Assemble(transcript.Range{Start: 0, End: 2}, sampleTokens(), sampleMeta(), "src-1", link)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if q.DeepLink != sampleMeta().URL {
		t.Errorf("deep link = %q, want plain source url", q.DeepLink)
	}
}

func TestAssembleRejectsBadRanges(t *testing.T) {
	tokens := sampleTokens()
	tests := []struct {
		name string
		rng  transcript.Range
		want error
	}{
		{"negative start", transcript.Range{Start: -1, End: 2}, ErrInvalidRange},
		{"end past tokens", transcript.Range{Start: 0, End: 9}, ErrInvalidRange},
		{"inverted", transcript.Range{Start: 3, End: 1}, ErrInvalidRange},
		{"too short", transcript.Range{Start: 0, End: 1}, ErrSelectionTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Assemble(tt.rng, tokens, sampleMeta(), "src-1", nil); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

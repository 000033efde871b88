package transcript

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/DarwinQVO/quotify/internal/model"
)

// fillerWords are dropped from transcripts during cleaning. Matching is
// case-insensitive on the token text after pause markers are stripped.
var fillerWords = map[string]struct{}{
	"um":        {},
	"uh":        {},
	"er":        {},
	"ah":        {},
	"hmm":       {},
	"mm":        {},
	"mhm":       {},
	"yeah":      {},
	"like":      {},
	"you know":  {},
	"so":        {},
	"well":      {},
	"okay":      {},
	"right":     {},
	"actually":  {},
	"basically": {},
}

var (
	pauseMarkerRe  = regexp.MustCompile(`(?i)\[pause\]|\[silence\]|\.\.\.`)
	singleLetterRe = regexp.MustCompile(`^[a-zA-Z]$`)
)

// Clean strips pause markers and drops filler and degenerate tokens,
// preserving the order and timings of what remains. The input slice is not
// modified, and cleaning an already-clean sequence is a no-op.
func Clean(tokens []model.TranscriptToken) []model.TranscriptToken {
	out := make([]model.TranscriptToken, 0, len(tokens))
	for _, tok := range tokens {
		text := stripPauseMarkers(tok.Text)
		if text == "" {
			continue
		}
		if _, filler := fillerWords[strings.ToLower(text)]; filler {
			continue
		}
		if utf8.RuneCountInString(text) == 1 && !singleLetterRe.MatchString(text) {
			continue
		}
		tok.Text = text
		out = append(out, tok)
	}
	return out
}

// stripPauseMarkers removes pause markers repeatedly until none remain, so
// nested or adjacent markers cannot survive a single pass.
func stripPauseMarkers(text string) string {
	for {
		next := pauseMarkerRe.ReplaceAllString(text, "")
		if next == text {
			break
		}
		text = next
	}
	return strings.TrimSpace(text)
}

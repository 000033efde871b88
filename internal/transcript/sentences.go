package transcript

import (
	"strings"

	"github.com/DarwinQVO/quotify/internal/model"
)

// MaxSentenceTokens caps how many tokens a sentence group may hold before it
// is force-closed, keeping run-on speech readable.
const MaxSentenceTokens = 20

// GroupIntoSentences splits a token sequence into ordered groups. A group
// closes when a token ends with terminal punctuation or when it reaches
// MaxSentenceTokens. Every token lands in exactly one group.
func GroupIntoSentences(tokens []model.TranscriptToken) [][]model.TranscriptToken {
	var groups [][]model.TranscriptToken
	var current []model.TranscriptToken
	for _, tok := range tokens {
		current = append(current, tok)
		if endsSentence(tok.Text) || len(current) >= MaxSentenceTokens {
			groups = append(groups, current)
			current = nil
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

func endsSentence(text string) bool {
	return strings.HasSuffix(text, ".") ||
		strings.HasSuffix(text, "!") ||
		strings.HasSuffix(text, "?")
}

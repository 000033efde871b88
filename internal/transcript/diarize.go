package transcript

import (
	"strings"

	"github.com/DarwinQVO/quotify/internal/model"
)

// speakerGapSeconds is the silence length that signals a speaker change.
const speakerGapSeconds = 2.0

var questionWords = map[string]struct{}{
	"what":  {},
	"how":   {},
	"why":   {},
	"when":  {},
	"where": {},
}

// LabelSpeakers assigns heuristic speaker labels in place. Long silences
// alternate between two speakers, and a question opening right after a
// sentence end is attributed to an interviewer. The heuristic is a stopgap
// until real diarization data is available from the transcriber.
func LabelSpeakers(tokens []model.TranscriptToken) {
	if len(tokens) == 0 {
		return
	}
	speakers := [2]string{"Speaker 1", "Speaker 2"}
	idx := 0
	tokens[0].Speaker = speakers[idx]
	for i := 1; i < len(tokens); i++ {
		prev := tokens[i-1]
		if tokens[i].Start-prev.End > speakerGapSeconds {
			idx = 1 - idx
		}
		if strings.HasSuffix(prev.Text, ".") && isQuestionStart(tokens[i].Text) {
			tokens[i].Speaker = "Interviewer"
			continue
		}
		tokens[i].Speaker = speakers[idx]
	}
}

func isQuestionStart(text string) bool {
	if strings.Contains(text, "?") {
		return true
	}
	_, ok := questionWords[strings.ToLower(strings.TrimRight(text, ".,!?"))]
	return ok
}

package transcript

import "github.com/DarwinQVO/quotify/internal/model"

// NoActiveToken is returned by ActiveIndex when no token covers the time.
const NoActiveToken = -1

// ActiveIndex resolves which token is active at playback time t. A token's
// effective end is the start of the next token, so inter-word gaps belong to
// the preceding word and exactly one token is active at any covered time.
// The last token stays active for all t at or after its start.
func ActiveIndex(tokens []model.TranscriptToken, t float64) int {
	if len(tokens) == 0 {
		return NoActiveToken
	}
	last := len(tokens) - 1
	for i := 0; i < last; i++ {
		if tokens[i].Start <= t && t < tokens[i+1].Start {
			return i
		}
	}
	if t >= tokens[last].Start {
		return last
	}
	return NoActiveToken
}

package quote

import (
	"errors"
	"strings"

	"github.com/DarwinQVO/quotify/internal/model"
	"github.com/DarwinQVO/quotify/internal/transcript"
)

var (
	ErrInvalidRange      = errors.New("quote range out of bounds")
	ErrSelectionTooShort = errors.New("selection too short for a quote")
)

// DeepLinkFunc builds a timestamped link into the source for a quote.
type DeepLinkFunc func(url string, ts float64) (string, error)

// Assemble turns a token range into a quote: joined text, citation, deep
// link, and the timestamp of the first selected token. The deep link is best
// effort; when the link builder fails, the plain source URL is used instead.
func Assemble(rng transcript.Range, tokens []model.TranscriptToken, meta *model.VideoMetadata, sourceID string, deepLink DeepLinkFunc) (model.Quote, error) {
	if rng.Start < 0 || rng.End >= len(tokens) || rng.Start > rng.End {
		return model.Quote{}, ErrInvalidRange
	}
	if rng.Span() < transcript.MinQuoteTokens {
		return model.Quote{}, ErrSelectionTooShort
	}

	selected := tokens[rng.Start : rng.End+1]
	words := make([]string, len(selected))
	for i, tok := range selected {
		words[i] = tok.Text
	}
	text := strings.Join(words, " ")
	ts := selected[0].Start

	speaker := selected[0].Speaker
	var srcURL, rawDate string
	if meta != nil {
		srcURL = meta.URL
		rawDate = meta.PublishDate
		if speaker == "" {
			speaker = meta.Channel
		}
	}
	if speaker == "" {
		speaker = UnknownSpeaker
	}

	link := srcURL
	if deepLink != nil {
		if l, err := deepLink(srcURL, ts); err == nil {
			link = l
		}
	}

	return model.Quote{
		Text:         text,
		Citation:     FormatCitation(speaker, rawDate),
		DeepLink:     link,
		Timestamp:    ts,
		SourceID:     sourceID,
		SelectedText: text,
	}, nil
}

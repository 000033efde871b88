package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/DarwinQVO/quotify/internal/model"
	"github.com/DarwinQVO/quotify/internal/quote"
	"github.com/DarwinQVO/quotify/internal/repository"
	"github.com/DarwinQVO/quotify/internal/transcript"
	"github.com/DarwinQVO/quotify/pkg/deeplink"
)

var (
	ErrSelectionTooShort = quote.ErrSelectionTooShort
	ErrInvalidSelection  = errors.New("selection range out of bounds")
)

// QuoteService extracts, lists, removes, and exports quotes.
type QuoteService struct {
	quotes  *repository.QuoteRepo
	sources *repository.SourceRepo
}

func NewQuoteService(quotes *repository.QuoteRepo, sources *repository.SourceRepo) *QuoteService {
	return &QuoteService{quotes: quotes, sources: sources}
}

// Extract builds and stores a quote from a token index range over the
// source's cleaned transcript. The range is replayed through the selection
// engine so API extraction enforces exactly the same rules as a drag
// selection in a client.
func (s *QuoteService) Extract(ctx context.Context, req model.QuoteRequest) (*model.Quote, error) {
	src, err := s.sources.FindByID(ctx, req.SourceID)
	if err != nil {
		return nil, err
	}
	if src.Transcript == nil || len(src.Transcript.Tokens) == 0 {
		return nil, ErrNoTranscript
	}

	tokens := transcript.Clean(src.Transcript.Tokens)
	if req.StartIndex < 0 || req.EndIndex >= len(tokens) || req.StartIndex > req.EndIndex {
		return nil, ErrInvalidSelection
	}

	engine := transcript.NewSelectionEngine(len(tokens))
	engine.PointerDown(req.StartIndex, transcript.Point{})
	engine.PointerEnter(req.EndIndex)
	if ready, _ := engine.PointerUp(transcript.Point{X: 1}); !ready {
		return nil, ErrSelectionTooShort
	}
	rng, _ := engine.Extract()

	q, err := quote.Assemble(rng, tokens, src.Metadata, src.ID, deeplink.Generate)
	if err != nil {
		return nil, err
	}
	q.ID = uuid.New().String()

	if err := s.quotes.Insert(ctx, q); err != nil {
		return nil, err
	}
	return &q, nil
}

// List returns quotes, optionally filtered to one source.
func (s *QuoteService) List(ctx context.Context, sourceID string) ([]model.Quote, error) {
	if sourceID != "" {
		return s.quotes.FindBySourceID(ctx, sourceID)
	}
	return s.quotes.FindAll(ctx)
}

// Remove deletes the given quotes, returning how many existed.
func (s *QuoteService) Remove(ctx context.Context, ids []string) (int64, error) {
	return s.quotes.Remove(ctx, ids)
}

// Export renders all quotes (or one source's quotes) as clipboard text.
func (s *QuoteService) Export(ctx context.Context, sourceID string) (string, error) {
	quotes, err := s.List(ctx, sourceID)
	if err != nil {
		return "", err
	}
	return quote.ExportText(quotes), nil
}

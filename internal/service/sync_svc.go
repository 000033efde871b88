package service

import (
	"context"
	"time"

	"github.com/DarwinQVO/quotify/internal/model"
	"github.com/DarwinQVO/quotify/internal/repository"
)

// SyncService assembles the full-state snapshot clients load on startup.
type SyncService struct {
	sources *repository.SourceRepo
	quotes  *repository.QuoteRepo
}

func NewSyncService(sources *repository.SourceRepo, quotes *repository.QuoteRepo) *SyncService {
	return &SyncService{sources: sources, quotes: quotes}
}

// FullSync returns every source and quote in one response.
func (s *SyncService) FullSync(ctx context.Context) (*model.SyncFullResponse, error) {
	sources, err := s.sources.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	quotes, err := s.quotes.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if sources == nil {
		sources = []model.Source{}
	}
	if quotes == nil {
		quotes = []model.Quote{}
	}

	return &model.SyncFullResponse{
		Sources:     sources,
		Quotes:      quotes,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

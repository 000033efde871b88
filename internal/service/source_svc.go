package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/DarwinQVO/quotify/internal/model"
	"github.com/DarwinQVO/quotify/internal/transcript"
)

var (
	ErrNoTranscript = errors.New("source has no transcript yet")
	ErrNotRetryable = errors.New("only errored sources can be retried")
)

// SourceStorage is the full source repository surface the service needs.
type SourceStorage interface {
	Insert(ctx context.Context, src model.Source) error
	FindByID(ctx context.Context, id string) (*model.Source, error)
	FindAll(ctx context.Context) ([]model.Source, error)
	ResetForRetry(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// SourceService owns the source lifecycle: creation, retry, deletion, and
// the synchronized transcript view.
type SourceService struct {
	repo   SourceStorage
	runner *PipelineRunner
	cache  *CacheService
}

func NewSourceService(repo SourceStorage, runner *PipelineRunner, cache *CacheService) *SourceService {
	return &SourceService{repo: repo, runner: runner, cache: cache}
}

// Add registers a new source and launches its pipeline run in the
// background. The API returns immediately; clients poll status.
func (s *SourceService) Add(ctx context.Context, url string) (*model.Source, error) {
	src := model.Source{
		ID:     uuid.New().String(),
		URL:    url,
		Status: model.StatusPending,
	}
	if err := s.repo.Insert(ctx, src); err != nil {
		return nil, err
	}

	go func() {
		// Detached from the request context: the pipeline outlives the
		// HTTP request that triggered it.
		if err := s.runner.Run(context.Background(), src.ID); err != nil && !errors.Is(err, ErrAlreadyRunning) {
			log.Printf("source: pipeline run %s: %v", src.ID, err)
		}
	}()

	return s.repo.FindByID(ctx, src.ID)
}

// Get returns a single source.
func (s *SourceService) Get(ctx context.Context, id string) (*model.Source, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all sources, newest first.
func (s *SourceService) List(ctx context.Context) ([]model.Source, error) {
	return s.repo.FindAll(ctx)
}

// Retry resets an errored source to pending and relaunches the pipeline.
// Returns ErrAlreadyRunning when a run for the source is still in flight
// and ErrNotRetryable when the source is in any state but error.
func (s *SourceService) Retry(ctx context.Context, id string) (*model.Source, error) {
	if s.runner.IsRunning(id) {
		return nil, ErrAlreadyRunning
	}
	src, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if src.Status != model.StatusError {
		return nil, ErrNotRetryable
	}
	if err := s.repo.ResetForRetry(ctx, id); err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateTranscript(ctx, id); err != nil {
			log.Printf("source: cache invalidate %s: %v", id, err)
		}
	}

	go func() {
		if err := s.runner.Run(context.Background(), id); err != nil && !errors.Is(err, ErrAlreadyRunning) {
			log.Printf("source: pipeline retry %s: %v", id, err)
		}
	}()

	return s.repo.FindByID(ctx, id)
}

// Remove deletes a source. Quotes extracted from it are kept.
func (s *SourceService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateTranscript(ctx, id); err != nil {
			log.Printf("source: cache invalidate %s: %v", id, err)
		}
	}
	return nil
}

// TranscriptView builds the display view of a source's transcript: cleaned
// tokens, sentence groups, and the token active at playback time t. The
// cleaned view is cached; the active index is computed per request since it
// changes with every tick of playback.
func (s *SourceService) TranscriptView(ctx context.Context, id string, t float64) (*model.TranscriptResponse, bool, error) {
	if s.cache != nil {
		if data, err := s.cache.GetTranscript(ctx, id); err == nil && data != nil {
			var resp model.TranscriptResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				resp.ActiveIndex = transcript.ActiveIndex(resp.Tokens, t)
				return &resp, true, nil
			}
		}
	}

	src, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if src.Transcript == nil || len(src.Transcript.Tokens) == 0 {
		return nil, false, ErrNoTranscript
	}

	tokens := transcript.Clean(src.Transcript.Tokens)
	resp := &model.TranscriptResponse{
		SourceID:  src.ID,
		Tokens:    tokens,
		Sentences: transcript.GroupIntoSentences(tokens),
	}

	if s.cache != nil {
		if err := s.cache.SetTranscript(ctx, id, resp); err != nil {
			log.Printf("source: cache set %s: %v", id, err)
		}
	}

	resp.ActiveIndex = transcript.ActiveIndex(resp.Tokens, t)
	return resp, false, nil
}

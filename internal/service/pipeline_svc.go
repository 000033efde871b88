package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DarwinQVO/quotify/internal/model"
)

// Pipeline progress checkpoints. Progress only moves forward within a run;
// it resets to zero solely through an explicit retry.
const (
	ProgressMetadataStart = 25
	ProgressMetadataDone  = 50
	ProgressTranscribing  = 75
	ProgressCompleted     = 100
)

var (
	ErrFetchMetadataFailed = errors.New("Failed to fetch video metadata")
	ErrCredentialMissing   = errors.New("OpenAI API key not configured. Please set it in Settings.")
	ErrTranscriptionFailed = errors.New("Transcription failed")
	ErrAlreadyRunning      = errors.New("source is already being processed")
)

// SourceStore is the subset of the source repository the pipeline needs.
type SourceStore interface {
	FindByID(ctx context.Context, id string) (*model.Source, error)
	Update(ctx context.Context, id string, upd model.SourceUpdate) error
}

// MetadataFetcher scrapes video metadata for a URL.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, url string) (*model.VideoMetadata, error)
}

// Transcriber produces a word-timed transcript for a video URL.
type Transcriber interface {
	Transcribe(ctx context.Context, url, apiKey string) (*model.TranscriptionResult, error)
}

// CredentialProvider resolves the transcription API key at run time, so a
// key saved in settings takes effect without a restart.
type CredentialProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// TranscriptInvalidator drops cached transcript views when a source's
// transcript changes.
type TranscriptInvalidator interface {
	InvalidateTranscript(ctx context.Context, sourceID string) error
}

// PipelineRunner drives one source through the ingestion state machine:
// pending -> metadata -> transcribing -> completed, or error. Each source
// runs at most once concurrently; runs of different sources are independent.
type PipelineRunner struct {
	store      SourceStore
	fetcher    MetadataFetcher
	transcribe Transcriber
	creds      CredentialProvider
	cache      TranscriptInvalidator
	duration   *prometheus.HistogramVec

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewPipelineRunner(store SourceStore, fetcher MetadataFetcher, transcriber Transcriber, creds CredentialProvider, cache TranscriptInvalidator) *PipelineRunner {
	return &PipelineRunner{
		store:      store,
		fetcher:    fetcher,
		transcribe: transcriber,
		creds:      creds,
		cache:      cache,
		inflight:   make(map[string]struct{}),
	}
}

// SetDurationObserver wires a histogram that records end-to-end pipeline
// durations, labelled by outcome.
func (r *PipelineRunner) SetDurationObserver(h *prometheus.HistogramVec) {
	r.duration = h
}

// IsRunning reports whether a pipeline run is in flight for the source.
func (r *PipelineRunner) IsRunning(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.inflight[id]
	return ok
}

// Run processes one source end to end. It returns ErrAlreadyRunning when a
// run for the same source is in flight, and nil when the source is not in
// the pending state (stale trigger, nothing to do). Step failures are
// recorded on the source itself, not returned: the API reads them from the
// source's error field.
func (r *PipelineRunner) Run(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.inflight[id]; ok {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	r.inflight[id] = struct{}{}
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.inflight, id)
		r.mu.Unlock()
	}()

	src, err := r.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if src.Status != model.StatusPending {
		log.Printf("pipeline: source %s is %s, skipping", id, src.Status)
		return nil
	}

	start := time.Now()
	outcome := "completed"
	if err := r.process(ctx, src); err != nil {
		outcome = "error"
		msg := err.Error()
		upd := model.SourceUpdate{Status: statusPtr(model.StatusError), Error: &msg}
		if updErr := r.store.Update(ctx, id, upd); updErr != nil {
			log.Printf("pipeline: failed to record error for %s: %v", id, updErr)
		}
		log.Printf("pipeline: source %s failed: %v", id, err)
	}
	if r.duration != nil {
		r.duration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}
	return nil
}

func (r *PipelineRunner) process(ctx context.Context, src *model.Source) error {
	// Metadata phase.
	if err := r.store.Update(ctx, src.ID, model.SourceUpdate{
		Status:   statusPtr(model.StatusMetadata),
		Progress: intPtr(ProgressMetadataStart),
	}); err != nil {
		return err
	}

	meta, err := r.fetcher.FetchMetadata(ctx, src.URL)
	if err != nil {
		log.Printf("pipeline: metadata fetch for %s: %v", src.ID, err)
		return ErrFetchMetadataFailed
	}

	if err := r.store.Update(ctx, src.ID, model.SourceUpdate{
		Progress: intPtr(ProgressMetadataDone),
		Metadata: meta,
	}); err != nil {
		return err
	}

	// Transcription phase.
	if err := r.store.Update(ctx, src.ID, model.SourceUpdate{
		Status:   statusPtr(model.StatusTranscribing),
		Progress: intPtr(ProgressTranscribing),
	}); err != nil {
		return err
	}

	apiKey, err := r.creds.APIKey(ctx)
	if err != nil {
		return err
	}
	if apiKey == "" {
		return ErrCredentialMissing
	}

	transcript, err := r.transcribe.Transcribe(ctx, src.URL, apiKey)
	if err != nil {
		log.Printf("pipeline: transcription for %s: %v", src.ID, err)
		return ErrTranscriptionFailed
	}

	// Completion is a single update so readers never observe a completed
	// source without its transcript.
	if err := r.store.Update(ctx, src.ID, model.SourceUpdate{
		Status:     statusPtr(model.StatusCompleted),
		Progress:   intPtr(ProgressCompleted),
		Transcript: transcript,
	}); err != nil {
		return err
	}

	if r.cache != nil {
		if err := r.cache.InvalidateTranscript(ctx, src.ID); err != nil {
			log.Printf("pipeline: cache invalidate for %s: %v", src.ID, err)
		}
	}
	return nil
}

func statusPtr(s model.SourceStatus) *model.SourceStatus { return &s }
func intPtr(i int) *int                                  { return &i }

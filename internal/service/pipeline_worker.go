package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/DarwinQVO/quotify/internal/model"
)

// PipelineWorker periodically sweeps for pending sources and runs them
// through the pipeline. It catches sources whose launch goroutine was lost
// to a crash or restart; the normal path triggers the runner directly.
type PipelineWorker struct {
	repo     SourceLister
	runner   *PipelineRunner
	interval time.Duration
	stopCh   chan struct{}
}

// SourceLister finds sources awaiting processing.
type SourceLister interface {
	FindIDsByStatus(ctx context.Context, status model.SourceStatus) ([]string, error)
}

func NewPipelineWorker(repo SourceLister, runner *PipelineRunner) *PipelineWorker {
	return &PipelineWorker{
		repo:     repo,
		runner:   runner,
		interval: 30 * time.Second,
		stopCh:   make(chan struct{}),
	}
}

// Start runs the sweep loop until Stop is called or the context is
// cancelled. Call in a goroutine.
func (w *PipelineWorker) Start(ctx context.Context) {
	log.Printf("pipeline-worker: starting (sweep interval=%s)", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Immediate first sweep so restarts pick up stranded sources promptly.
	w.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-w.stopCh:
			log.Println("pipeline-worker: stopping")
			return
		case <-ctx.Done():
			log.Println("pipeline-worker: stopping (context cancelled)")
			return
		}
	}
}

// Stop signals the worker loop to exit.
func (w *PipelineWorker) Stop() {
	close(w.stopCh)
}

func (w *PipelineWorker) sweep(ctx context.Context) {
	ids, err := w.repo.FindIDsByStatus(ctx, model.StatusPending)
	if err != nil {
		log.Printf("pipeline-worker: sweep query failed: %v", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	launched := 0
	for _, id := range ids {
		if w.runner.IsRunning(id) {
			continue
		}
		go func(id string) {
			if err := w.runner.Run(ctx, id); err != nil && !errors.Is(err, ErrAlreadyRunning) {
				log.Printf("pipeline-worker: run %s: %v", id, err)
			}
		}(id)
		launched++
	}
	if launched > 0 {
		log.Printf("pipeline-worker: sweep launched %d pending sources", launched)
	}
}

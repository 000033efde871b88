package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DarwinQVO/quotify/internal/model"
)

type fakeStore struct {
	mu      sync.Mutex
	sources map[string]*model.Source
	updates []model.SourceUpdate
}

func newFakeStore(srcs ...*model.Source) *fakeStore {
	s := &fakeStore{sources: make(map[string]*model.Source)}
	for _, src := range srcs {
		s.sources[src.ID] = src
	}
	return s
}

func (s *fakeStore) FindByID(ctx context.Context, id string) (*model.Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.sources[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *src
	return &cp, nil
}

func (s *fakeStore) Update(ctx context.Context, id string, upd model.SourceUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.sources[id]
	if !ok {
		return errors.New("not found")
	}
	if upd.Status != nil {
		src.Status = *upd.Status
	}
	if upd.Progress != nil {
		src.Progress = *upd.Progress
	}
	if upd.Metadata != nil {
		src.Metadata = upd.Metadata
	}
	if upd.Transcript != nil {
		src.Transcript = upd.Transcript
	}
	if upd.Error != nil {
		src.Error = upd.Error
	}
	s.updates = append(s.updates, upd)
	return nil
}

type fakeFetcher struct {
	meta *model.VideoMetadata
	err  error
}

func (f *fakeFetcher) FetchMetadata(ctx context.Context, url string) (*model.VideoMetadata, error) {
	return f.meta, f.err
}

type fakeTranscriber struct {
	result  *model.TranscriptionResult
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, url, apiKey string) (*model.TranscriptionResult, error) {
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.result, f.err
}

type fakeCreds struct {
	key string
	err error
}

func (f *fakeCreds) APIKey(ctx context.Context) (string, error) {
	return f.key, f.err
}

func pendingSource(id string) *model.Source {
	return &model.Source{ID: id, URL: "https://youtu.be/dQw4w9WgXcQ", Status: model.StatusPending}
}

func testMeta() *model.VideoMetadata {
	return &model.VideoMetadata{Title: "t", Channel: "c", PublishDate: "20240101"}
}

func testTranscript() *model.TranscriptionResult {
	return &model.TranscriptionResult{
		Tokens:   []model.TranscriptToken{{Text: "hi", Start: 0, End: 0.5}},
		FullText: "hi",
	}
}

func TestPipelineRunCompletes(t *testing.T) {
	store := newFakeStore(pendingSource("s1"))
	runner := NewPipelineRunner(store,
		&fakeFetcher{meta: testMeta()},
		&fakeTranscriber{result: testTranscript()},
		&fakeCreds{key: "sk-test"},
		nil)

	if err := runner.Run(context.Background(), "s1"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	src := store.sources["s1"]
	if src.Status != model.StatusCompleted {
		t.Errorf("status = %s, want completed", src.Status)
	}
	if src.Progress != ProgressCompleted {
		t.Errorf("progress = %d, want %d", src.Progress, ProgressCompleted)
	}
	if src.Transcript == nil {
		t.Error("transcript not stored")
	}
	if src.Metadata == nil {
		t.Error("metadata not stored")
	}
	if src.Error != nil {
		t.Errorf("unexpected error recorded: %s", *src.Error)
	}
}

func TestPipelineProgressCheckpoints(t *testing.T) {
	store := newFakeStore(pendingSource("s1"))
	runner := NewPipelineRunner(store,
		&fakeFetcher{meta: testMeta()},
		&fakeTranscriber{result: testTranscript()},
		&fakeCreds{key: "sk-test"},
		nil)

	if err := runner.Run(context.Background(), "s1"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var progress []int
	for _, upd := range store.updates {
		if upd.Progress != nil {
			progress = append(progress, *upd.Progress)
		}
	}
	want := []int{25, 50, 75, 100}
	if len(progress) != len(want) {
		t.Fatalf("progress checkpoints = %v, want %v", progress, want)
	}
	for i := range want {
		if progress[i] != want[i] {
			t.Errorf("checkpoint %d = %d, want %d", i, progress[i], want[i])
		}
	}
}

func TestPipelineMetadataFailure(t *testing.T) {
	store := newFakeStore(pendingSource("s1"))
	runner := NewPipelineRunner(store,
		&fakeFetcher{err: errors.New("yt-dlp exploded")},
		&fakeTranscriber{result: testTranscript()},
		&fakeCreds{key: "sk-test"},
		nil)

	if err := runner.Run(context.Background(), "s1"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	src := store.sources["s1"]
	if src.Status != model.StatusError {
		t.Errorf("status = %s, want error", src.Status)
	}
	if src.Error == nil || *src.Error != ErrFetchMetadataFailed.Error() {
		t.Errorf("error = %v, want %q", src.Error, ErrFetchMetadataFailed)
	}
	if src.Progress != ProgressMetadataStart {
		t.Errorf("progress = %d, want it left at %d", src.Progress, ProgressMetadataStart)
	}
}

func TestPipelineMissingAPIKey(t *testing.T) {
	store := newFakeStore(pendingSource("s1"))
	runner := NewPipelineRunner(store,
		&fakeFetcher{meta: testMeta()},
		&fakeTranscriber{result: testTranscript()},
		&fakeCreds{key: ""},
		nil)

	if err := runner.Run(context.Background(), "s1"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	src := store.sources["s1"]
	if src.Status != model.StatusError {
		t.Errorf("status = %s, want error", src.Status)
	}
	if src.Error == nil || *src.Error != ErrCredentialMissing.Error() {
		t.Errorf("error = %v, want credential message", src.Error)
	}
	if src.Metadata == nil {
		t.Error("metadata from the successful phase should be kept")
	}
}

func TestPipelineTranscriptionFailure(t *testing.T) {
	store := newFakeStore(pendingSource("s1"))
	runner := NewPipelineRunner(store,
		&fakeFetcher{meta: testMeta()},
		&fakeTranscriber{err: errors.New("whisper timeout")},
		&fakeCreds{key: "sk-test"},
		nil)

	if err := runner.Run(context.Background(), "s1"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	src := store.sources["s1"]
	if src.Error == nil || *src.Error != ErrTranscriptionFailed.Error() {
		t.Errorf("error = %v, want %q", src.Error, ErrTranscriptionFailed)
	}
	if src.Progress != ProgressTranscribing {
		t.Errorf("progress = %d, want it left at %d", src.Progress, ProgressTranscribing)
	}
}

func TestPipelineSkipsNonPending(t *testing.T) {
	src := pendingSource("s1")
	src.Status = model.StatusCompleted
	store := newFakeStore(src)
	runner := NewPipelineRunner(store,
		&fakeFetcher{meta: testMeta()},
		&fakeTranscriber{result: testTranscript()},
		&fakeCreds{key: "sk-test"},
		nil)

	if err := runner.Run(context.Background(), "s1"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(store.updates) != 0 {
		t.Errorf("non-pending source got %d updates", len(store.updates))
	}
}

func TestPipelineRejectsConcurrentRun(t *testing.T) {
	store := newFakeStore(pendingSource("s1"))
	tr := &fakeTranscriber{
		result:  testTranscript(),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	runner := NewPipelineRunner(store,
		&fakeFetcher{meta: testMeta()},
		tr,
		&fakeCreds{key: "sk-test"},
		nil)

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(context.Background(), "s1")
	}()

	select {
	case <-tr.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first run never reached transcription")
	}

	if !runner.IsRunning("s1") {
		t.Error("IsRunning should report the in-flight run")
	}
	if err := runner.Run(context.Background(), "s1"); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second run returned %v, want ErrAlreadyRunning", err)
	}

	close(tr.release)
	if err := <-done; err != nil {
		t.Fatalf("first run: %v", err)
	}
	if runner.IsRunning("s1") {
		t.Error("IsRunning should clear after the run finishes")
	}
}

package service

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/DarwinQVO/quotify/internal/model"
	"github.com/DarwinQVO/quotify/internal/transcript"
)

// TranscriberService downloads a video's audio track with yt-dlp and sends
// it to the Whisper API for word-level timestamps.
type TranscriberService struct {
	ytdlpPath string

	// newClient is swappable so tests can stub the OpenAI API.
	newClient func(apiKey string) whisperClient
}

type whisperClient interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

func NewTranscriberService(ytdlpPath string) *TranscriberService {
	if ytdlpPath == "" {
		ytdlpPath = "yt-dlp"
	}
	return &TranscriberService{
		ytdlpPath: ytdlpPath,
		newClient: func(apiKey string) whisperClient {
			return openai.NewClient(apiKey)
		},
	}
}

// Transcribe downloads the audio and runs Whisper with word timestamps.
// Heuristic speaker labels are attached before the result is returned so
// they persist with the transcript.
func (s *TranscriberService) Transcribe(ctx context.Context, url, apiKey string) (*model.TranscriptionResult, error) {
	audioPath, cleanup, err := s.downloadAudio(ctx, url)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	client := s.newClient(apiKey)
	resp, err := client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularityWord,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("whisper: %w", err)
	}

	tokens := make([]model.TranscriptToken, 0, len(resp.Words))
	for _, w := range resp.Words {
		text := strings.TrimSpace(w.Word)
		if text == "" {
			continue
		}
		tokens = append(tokens, model.TranscriptToken{
			Text:  text,
			Start: w.Start,
			End:   w.End,
		})
	}
	transcript.LabelSpeakers(tokens)

	return &model.TranscriptionResult{
		Tokens:   tokens,
		FullText: resp.Text,
	}, nil
}

// downloadAudio extracts the audio track to a temp file and returns its path
// plus a cleanup func that removes the temp directory.
func (s *TranscriberService) downloadAudio(ctx context.Context, url string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "quotify-audio-")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(dir) }

	outPath := filepath.Join(dir, "audio.mp3")
	cmd := exec.CommandContext(ctx, s.ytdlpPath,
		"-x", "--audio-format", "mp3",
		"--audio-quality", "0",
		"-o", outPath,
		url,
	)
	if err := cmd.Run(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("yt-dlp audio download: %w", err)
	}
	return outPath, cleanup, nil
}

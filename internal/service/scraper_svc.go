package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/DarwinQVO/quotify/internal/model"
)

const metadataFetchTimeout = 60 * time.Second

// ScraperService fetches video metadata by shelling out to yt-dlp.
type ScraperService struct {
	ytdlpPath string
}

func NewScraperService(ytdlpPath string) *ScraperService {
	if ytdlpPath == "" {
		ytdlpPath = "yt-dlp"
	}
	return &ScraperService{ytdlpPath: ytdlpPath}
}

// ytdlpInfo is the subset of yt-dlp's --dump-json output we care about.
type ytdlpInfo struct {
	Title      string  `json:"title"`
	Uploader   string  `json:"uploader"`
	Channel    string  `json:"channel"`
	Duration   float64 `json:"duration"`
	UploadDate string  `json:"upload_date"`
	ViewCount  int64   `json:"view_count"`
	Thumbnail  string  `json:"thumbnail"`
	WebpageURL string  `json:"webpage_url"`
}

// FetchMetadata runs yt-dlp in metadata-only mode and maps its JSON output.
// Missing fields get placeholder values rather than failing the fetch.
func (s *ScraperService) FetchMetadata(ctx context.Context, url string) (*model.VideoMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, metadataFetchTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.ytdlpPath, "--dump-json", "--no-download", url)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}

	var info ytdlpInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("yt-dlp output: %w", err)
	}

	meta := &model.VideoMetadata{
		Title:       info.Title,
		Channel:     info.Channel,
		Duration:    int64(info.Duration),
		PublishDate: info.UploadDate,
		Views:       info.ViewCount,
		Thumbnail:   info.Thumbnail,
		URL:         info.WebpageURL,
	}
	if meta.Title == "" {
		meta.Title = "Unknown Title"
	}
	if meta.Channel == "" {
		meta.Channel = info.Uploader
	}
	if meta.Channel == "" {
		meta.Channel = "Unknown Channel"
	}
	if meta.URL == "" {
		meta.URL = url
	}
	return meta, nil
}

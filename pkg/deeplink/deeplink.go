// Package deeplink builds timestamped YouTube links and validates video URLs.
package deeplink

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	watchRe  = regexp.MustCompile(`^https?://(www\.)?youtube\.com/watch\?.*v=[\w-]{11}`)
	shortRe  = regexp.MustCompile(`^https?://youtu\.be/[\w-]{11}`)
	embedRe  = regexp.MustCompile(`^https?://(www\.)?youtube\.com/embed/[\w-]{11}`)
	videoIDs = regexp.MustCompile(`[\w-]{11}`)
)

// IsValidYouTubeURL reports whether url is a recognized YouTube video URL.
func IsValidYouTubeURL(url string) bool {
	return watchRe.MatchString(url) || shortRe.MatchString(url) || embedRe.MatchString(url)
}

// ExtractVideoID pulls the 11-character video id out of a YouTube URL.
func ExtractVideoID(url string) (string, error) {
	var rest string
	switch {
	case strings.Contains(url, "v="):
		rest = url[strings.Index(url, "v=")+2:]
	case strings.Contains(url, "youtu.be/"):
		rest = url[strings.Index(url, "youtu.be/")+len("youtu.be/"):]
	case strings.Contains(url, "/embed/"):
		rest = url[strings.Index(url, "/embed/")+len("/embed/"):]
	default:
		return "", fmt.Errorf("no video id in url %q", url)
	}
	if i := strings.IndexAny(rest, "&?"); i >= 0 {
		rest = rest[:i]
	}
	if !videoIDs.MatchString(rest) {
		return "", fmt.Errorf("no video id in url %q", url)
	}
	return videoIDs.FindString(rest), nil
}

// Generate builds a short youtu.be link that starts playback at ts seconds.
func Generate(url string, ts float64) (string, error) {
	id, err := ExtractVideoID(url)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://youtu.be/%s?t=%d", id, int(ts)), nil
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/DarwinQVO/quotify/pkg/deeplink"
)

// Field length limits matching database schema constraints.
const (
	MaxURLLen      = 2048 // sources.url VARCHAR(2048)
	MaxQuoteIDs    = 100  // per delete request
	MaxQuoteIDLen  = 36   // quotes.id VARCHAR(36)
	MaxSourceIDLen = 36   // sources.id VARCHAR(36)
)

var validThemes = map[string]struct{}{
	"light":  {},
	"dark":   {},
	"system": {},
}

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateSourceURL checks that a source URL is present, within DB limits,
// and points at a supported video site.
func ValidateSourceURL(url string) (string, string) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", "url is required"
	}
	if len(url) > MaxURLLen {
		return "", "url must be at most 2048 characters"
	}
	if !deeplink.IsValidYouTubeURL(url) {
		return "", "url must be a valid YouTube video URL"
	}
	return url, ""
}

// ValidateSourceID checks that a source id looks like one we issued.
func ValidateSourceID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "source id is required"
	}
	if len(id) > MaxSourceIDLen {
		return "", "source id must be at most 36 characters"
	}
	return id, ""
}

// ValidateQuoteIDs checks a quote deletion list.
func ValidateQuoteIDs(ids []string) ([]string, string) {
	if len(ids) == 0 {
		return nil, "quoteIds is required"
	}
	if len(ids) > MaxQuoteIDs {
		return nil, "at most 100 quotes can be deleted per request"
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || len(id) > MaxQuoteIDLen {
			return nil, "quoteIds contains an invalid id"
		}
		out = append(out, id)
	}
	return out, ""
}

// ValidateTheme checks a theme setting value.
func ValidateTheme(theme string) (string, string) {
	theme = strings.TrimSpace(strings.ToLower(theme))
	if _, ok := validThemes[theme]; !ok {
		return "", "theme must be one of: light, dark, system"
	}
	return theme, ""
}

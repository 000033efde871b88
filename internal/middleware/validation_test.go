package middleware

import (
	"strings"
	"testing"
)

func TestValidateSourceURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"valid short url", "https://youtu.be/dQw4w9WgXcQ", "https://youtu.be/dQw4w9WgXcQ", false},
		{"trims whitespace", "  https://youtu.be/dQw4w9WgXcQ  ", "https://youtu.be/dQw4w9WgXcQ", false},
		{"empty", "", "", true},
		{"not youtube", "https://vimeo.com/12345", "", true},
		{"not a url", "hello world", "", true},
		{"too long", "https://youtu.be/dQw4w9WgXcQ?" + strings.Repeat("x", 2050), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateSourceURL(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateSourceID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid uuid", "a3bb189e-8bf9-3888-9912-ace4e6543002", "a3bb189e-8bf9-3888-9912-ace4e6543002", false},
		{"trims whitespace", "  abc  ", "abc", false},
		{"empty", "", "", true},
		{"too long", strings.Repeat("a", 37), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateSourceID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateQuoteIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantLen int
		wantErr bool
	}{
		{"valid", []string{"id-1", "id-2"}, 2, false},
		{"empty list", nil, 0, true},
		{"blank id", []string{"id-1", "  "}, 0, true},
		{"too many", make([]string, 101), 0, true},
	}
	for i := range tests[3].input {
		tests[3].input[i] = "id"
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateQuoteIDs(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("got %d ids, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestValidateTheme(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"light", "light", "light", false},
		{"dark", "dark", "dark", false},
		{"system", "system", "system", false},
		{"uppercase normalized", "DARK", "dark", false},
		{"trims whitespace", " dark ", "dark", false},
		{"unknown", "solarized", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateTheme(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

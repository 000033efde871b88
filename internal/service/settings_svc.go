package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/DarwinQVO/quotify/internal/model"
)

// Settings keys in the app_settings table.
const (
	settingAPIKey    = "openai_api_key"
	settingTheme     = "theme"
	settingAutoSave  = "auto_save"
	settingMaxQuotes = "max_quotes"
)

// Defaults applied when a setting has never been written.
const (
	defaultTheme     = "system"
	defaultAutoSave  = true
	defaultMaxQuotes = 100
)

var ErrInvalidSetting = errors.New("invalid setting value")

// SettingsStore is the subset of the settings repository the service needs.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}

// SettingsService reads and writes app settings, keeping an in-memory copy
// that is invalidated on every write. The OpenAI API key stored here takes
// precedence over the environment variable, so users can set it at runtime
// without a restart.
type SettingsService struct {
	store     SettingsStore
	envAPIKey string

	mu     sync.Mutex
	cached map[string]string
}

func NewSettingsService(store SettingsStore, envAPIKey string) *SettingsService {
	return &SettingsService{store: store, envAPIKey: envAPIKey}
}

// load returns the settings map, reading from the store on a cold cache.
func (s *SettingsService) load(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}
	stored, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	s.cached = stored
	return stored, nil
}

func (s *SettingsService) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// APIKey resolves the transcription API key: stored setting first, then the
// environment. Implements the pipeline's CredentialProvider.
func (s *SettingsService) APIKey(ctx context.Context) (string, error) {
	stored, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	if key := stored[settingAPIKey]; key != "" {
		return key, nil
	}
	return s.envAPIKey, nil
}

// View returns the current settings with defaults filled in. The API key is
// never echoed back, only its presence.
func (s *SettingsService) View(ctx context.Context) (*model.SettingsResponse, error) {
	stored, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	resp := &model.SettingsResponse{
		HasAPIKey: stored[settingAPIKey] != "" || s.envAPIKey != "",
		Theme:     defaultTheme,
		AutoSave:  defaultAutoSave,
		MaxQuotes: defaultMaxQuotes,
	}
	if v, ok := stored[settingTheme]; ok && v != "" {
		resp.Theme = v
	}
	if v, ok := stored[settingAutoSave]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			resp.AutoSave = b
		}
	}
	if v, ok := stored[settingMaxQuotes]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			resp.MaxQuotes = n
		}
	}
	return resp, nil
}

// Update applies the non-nil fields of req and returns the resulting view.
func (s *SettingsService) Update(ctx context.Context, req model.SettingsRequest) (*model.SettingsResponse, error) {
	if req.MaxQuotes != nil && *req.MaxQuotes <= 0 {
		return nil, ErrInvalidSetting
	}

	if req.OpenAIAPIKey != nil {
		if err := s.store.Set(ctx, settingAPIKey, *req.OpenAIAPIKey); err != nil {
			return nil, err
		}
	}
	if req.Theme != nil {
		if err := s.store.Set(ctx, settingTheme, *req.Theme); err != nil {
			return nil, err
		}
	}
	if req.AutoSave != nil {
		if err := s.store.Set(ctx, settingAutoSave, strconv.FormatBool(*req.AutoSave)); err != nil {
			return nil, err
		}
	}
	if req.MaxQuotes != nil {
		if err := s.store.Set(ctx, settingMaxQuotes, strconv.Itoa(*req.MaxQuotes)); err != nil {
			return nil, err
		}
	}

	s.invalidate()
	return s.View(ctx)
}

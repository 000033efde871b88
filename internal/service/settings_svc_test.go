package service

import (
	"context"
	"testing"

	"github.com/DarwinQVO/quotify/internal/model"
)

type memSettings struct {
	data map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{data: make(map[string]string)}
}

func (m *memSettings) Get(ctx context.Context, key string) (string, error) {
	return m.data[key], nil
}

func (m *memSettings) Set(ctx context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memSettings) All(ctx context.Context) (map[string]string, error) {
	return m.data, nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(newMemSettings(), "")
	view, err := svc.View(context.Background())
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.HasAPIKey {
		t.Error("HasAPIKey should be false with no key anywhere")
	}
	if view.Theme != "system" || !view.AutoSave || view.MaxQuotes != 100 {
		t.Errorf("defaults wrong: %+v", view)
	}
}

func TestSettingsAPIKeyPrecedence(t *testing.T) {
	store := newMemSettings()
	svc := NewSettingsService(store, "sk-env")

	key, err := svc.APIKey(context.Background())
	if err != nil {
		t.Fatalf("APIKey: %v", err)
	}
	if key != "sk-env" {
		t.Errorf("got %q, want env fallback", key)
	}

	if _, err := svc.Update(context.Background(), model.SettingsRequest{OpenAIAPIKey: strPtr("sk-stored")}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	key, _ = svc.APIKey(context.Background())
	if key != "sk-stored" {
		t.Errorf("got %q, stored key should win over env", key)
	}
}

func TestSettingsUpdatePartial(t *testing.T) {
	svc := NewSettingsService(newMemSettings(), "")
	view, err := svc.Update(context.Background(), model.SettingsRequest{Theme: strPtr("dark")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if view.Theme != "dark" {
		t.Errorf("theme = %q, want dark", view.Theme)
	}
	if !view.AutoSave || view.MaxQuotes != 100 {
		t.Errorf("untouched fields changed: %+v", view)
	}

	view, err = svc.Update(context.Background(), model.SettingsRequest{AutoSave: boolPtr(false)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if view.AutoSave {
		t.Error("autoSave should be false")
	}
	if view.Theme != "dark" {
		t.Error("earlier theme update lost")
	}
}

func TestSettingsRejectsNonPositiveMaxQuotes(t *testing.T) {
	svc := NewSettingsService(newMemSettings(), "")
	bad := 0
	if _, err := svc.Update(context.Background(), model.SettingsRequest{MaxQuotes: &bad}); err != ErrInvalidSetting {
		t.Errorf("got %v, want ErrInvalidSetting", err)
	}
}

func TestSettingsNeverEchoesKey(t *testing.T) {
	svc := NewSettingsService(newMemSettings(), "")
	view, err := svc.Update(context.Background(), model.SettingsRequest{OpenAIAPIKey: strPtr("sk-secret")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !view.HasAPIKey {
		t.Error("HasAPIKey should be true after storing a key")
	}
}

package model

// SettingsResponse is the API view of the stored settings. The API key
// itself is write-only; responses only report whether one is configured.
type SettingsResponse struct {
	HasAPIKey bool   `json:"hasApiKey"`
	Theme     string `json:"theme"`
	AutoSave  bool   `json:"autoSave"`
	MaxQuotes int    `json:"maxQuotes"`
}

// SettingsRequest is the API request body for updating settings. Nil fields
// are left unchanged.
type SettingsRequest struct {
	OpenAIAPIKey *string `json:"openaiApiKey,omitempty"`
	Theme        *string `json:"theme,omitempty"`
	AutoSave     *bool   `json:"autoSave,omitempty"`
	MaxQuotes    *int    `json:"maxQuotes,omitempty"`
}

// SyncFullResponse is the hydration snapshot returned to clients on startup.
type SyncFullResponse struct {
	Sources     []Source `json:"sources"`
	Quotes      []Quote  `json:"quotes"`
	GeneratedAt string   `json:"generatedAt"`
}

package vision

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ORBQUEST_VISION_PROVIDER", "anthropic")
	t.Setenv("ORBQUEST_ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ORBQUEST_ANTHROPIC_MODEL", "claude-test")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "test-key" {
		t.Errorf("api key = %q, want test-key", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-test" {
		t.Errorf("model = %q, want claude-test", cfg.Anthropic.Model)
	}
	// Unset values keep defaults.
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai model = %q, want default", cfg.OpenAI.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Errorf("discovered provider = %q ok=%v, want gemini", cfg.Provider, ok)
	}

	// OpenAI wins when multiple keys are present.
	t.Setenv("OPENAI_API_KEY", "o-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "openai" {
		t.Errorf("discovered provider = %q ok=%v, want openai", cfg.Provider, ok)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llava"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package llm

import "testing"

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"

	cases := []struct {
		provider string
		wantName string
	}{
		{"openai", "openai"},
		{"together", "together"},
		{"anthropic", "anthropic"},
		{"claude", "anthropic"},
		{"ollama", "ollama"},
	}

	for _, tc := range cases {
		cfg.Provider = tc.provider
		p, err := NewProvider(cfg)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.provider, err)
			continue
		}
		if p.Name() != tc.wantName {
			t.Errorf("%s: expected name %s, got %s", tc.provider, tc.wantName, p.Name())
		}
	}
}

func TestNewProvider_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ""

	p, err := NewProvider(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Error("expected nil provider when disabled")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "grok"

	if _, err := NewProvider(cfg); err == nil {
		t.Error("expected error for unknown provider")
	}
}

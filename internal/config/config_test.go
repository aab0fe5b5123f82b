package config

import "testing"

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/voicedrop")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "service-account.json")
	t.Setenv("RUNPOD_API_URL", "https://api.runpod.ai/v2/whisper/runsync")
	t.Setenv("RUNPOD_API_TOKEN", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.TranscribeMode != ModeDeferred {
		t.Errorf("expected default mode %s, got %s", ModeDeferred, cfg.TranscribeMode)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadInlineMode(t *testing.T) {
	setRequired(t)
	t.Setenv("TRANSCRIBE_MODE", "INLINE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TranscribeMode != ModeInline {
		t.Errorf("expected mode %s, got %s", ModeInline, cfg.TranscribeMode)
	}
}

func TestLoadUnsupportedMode(t *testing.T) {
	setRequired(t)
	t.Setenv("TRANSCRIBE_MODE", "batch")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported mode")
	}
}

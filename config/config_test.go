package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "ai_provider: gemini\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.Model != "gemini-1.5-flash-latest" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.FallbackModel != "gemini-1.0-pro-latest" {
		t.Errorf("fallback_model = %q", cfg.FallbackModel)
	}
	if cfg.MaxWords != 150 || cfg.MultiDocMaxWords != 500 {
		t.Errorf("word budgets = %d/%d", cfg.MaxWords, cfg.MultiDocMaxWords)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "port: \"9000\"\nmodel: gemini-2.0-flash\nupload_dir: /tmp/docsum\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.Model != "gemini-2.0-flash" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.UploadDir != "/tmp/docsum" {
		t.Errorf("upload_dir = %q", cfg.UploadDir)
	}
}

func TestLoadConfig_EnvironmentKeys(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key-one,key-two")
	path := writeConfig(t, "ai_provider: gemini\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.GeminiAPIKey != "key-one,key-two" {
		t.Errorf("GEMINI_API_KEY = %q", cfg.GeminiAPIKey)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

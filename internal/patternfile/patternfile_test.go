package patternfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	content := "patterns:\n  ab: \"(a|b)*\"\n  tail: \"(0|1)*1\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if len(cfg.Patterns) != 2 {
		t.Fatalf("got %d patterns, want 2", len(cfg.Patterns))
	}
	if cfg.Patterns["ab"] != "(a|b)*" {
		t.Errorf("pattern ab = %q", cfg.Patterns["ab"])
	}
}

func TestNewConfig_Missing(t *testing.T) {
	if _, err := NewConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("NewConfig of a missing file should fail")
	}
}

func TestNewConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("patterns: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewConfig(path); err == nil {
		t.Error("NewConfig of invalid YAML should fail")
	}
}

func TestNewConfig_NoPatterns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("patterns: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewConfig(path); err == nil {
		t.Error("NewConfig of a file without patterns should fail")
	}
}

func TestGenerateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	if err := GenerateSample(path); err != nil {
		t.Fatalf("GenerateSample() error = %v", err)
	}

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig() of the sample: %v", err)
	}
	for name := range DefaultPatterns {
		if _, ok := cfg.Patterns[name]; !ok {
			t.Errorf("sample is missing pattern %q", name)
		}
	}
}

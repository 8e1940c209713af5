// Package patternfile loads named pattern definitions from YAML files for
// bulk CLI operations.
package patternfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPatterns is the sample pattern set written by GenerateSample.
var DefaultPatterns = map[string]string{
	// binary strings whose fifth-from-last bit is 1
	"bit5": "(0|1)*1(0|1)(0|1)(0|1)(0|1)",
	// the classic pathological case for backtracking matchers
	"pathological": "xx*xx*(xx*xx*)*y",
	"keyword":      "(ab|ba)*",
}

// Config holds named regex patterns read from a pattern file.
type Config struct {
	Patterns map[string]string `yaml:"patterns"`
}

// NewConfig reads a pattern file.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, fmt.Errorf("invalid pattern file %s: %w", filePath, err)
	}
	if len(cfg.Patterns) == 0 {
		return nil, fmt.Errorf("pattern file %s defines no patterns", filePath)
	}
	return &cfg, nil
}

// GenerateSample creates a sample pattern file with default values.
func GenerateSample(filePath string) error {
	cfg := Config{Patterns: DefaultPatterns}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// Package config reads the optional lexhunt.yaml defaults file. Values
// here sit between built-in defaults and command-line flags: flags win.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no
// --config flag is given.
const DefaultFileName = "lexhunt.yaml"

type Config struct {
	Dictionary string   `yaml:"dictionary"`
	TLDs       []string `yaml:"tlds"`
	BatchSize  int      `yaml:"batch_size"`
	Delay      Duration `yaml:"delay"`
	Timeout    Duration `yaml:"timeout"`
	Output     string   `yaml:"output"`
	BaseURL    string   `yaml:"base_url"`
}

// Duration accepts Go duration strings ("4s", "1m30s") in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads and decodes the file at path. A missing file surfaces as
// an fs.ErrNotExist-wrapping error so callers can treat the default
// location as optional.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

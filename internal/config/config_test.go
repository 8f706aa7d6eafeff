package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lexhunt.yaml")
	body := `
dictionary: /usr/share/dict/words
tlds: [".com", ".io"]
batch_size: 50
delay: 4s
timeout: 30s
output: found.json
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dictionary != "/usr/share/dict/words" {
		t.Fatalf("Dictionary=%q", cfg.Dictionary)
	}
	if len(cfg.TLDs) != 2 || cfg.TLDs[0] != ".com" {
		t.Fatalf("TLDs=%v", cfg.TLDs)
	}
	if cfg.BatchSize != 50 {
		t.Fatalf("BatchSize=%d", cfg.BatchSize)
	}
	if time.Duration(cfg.Delay) != 4*time.Second {
		t.Fatalf("Delay=%v", cfg.Delay)
	}
	if cfg.Output != "found.json" {
		t.Fatalf("Output=%q", cfg.Output)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v, want fs.ErrNotExist", err)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lexhunt.yaml")
	if err := os.WriteFile(path, []byte("delay: soon\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for bad duration")
	}
}

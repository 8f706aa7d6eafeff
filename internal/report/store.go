package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store persists report snapshots.
type Store interface {
	Save(r Report) error
}

// FileStore writes the report as indented JSON. Each Save rewrites the
// whole file, so saving after every batch keeps the file consistent
// even if the run is interrupted.
type FileStore struct {
	Path string
}

func (s FileStore) Save(r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshal: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", s.Path, err)
	}
	return nil
}

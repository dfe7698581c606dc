package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	logging "mario-graph/internal/infra/log"

	"go.uber.org/zap"
)

// WriteFileAtomic writes data next to path as a .tmp file and renames it into place.
// The parent directory is created when missing.
func WriteFileAtomic(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	tempFilePath := path + ".tmp"
	if err := os.WriteFile(tempFilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempFilePath, path); err != nil {
		_ = os.Remove(tempFilePath)
		return fmt.Errorf("failed to rename temporary file to %s: %w", path, err)
	}

	logging.LogDebug("Wrote file", zap.String("file", path), zap.Int("bytes", len(data)))
	return nil
}

// LoadJSON decodes the JSON file at path into v.
func LoadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

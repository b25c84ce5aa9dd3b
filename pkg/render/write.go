package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists reports that the output file is already present and force
// was not set. Callers match it with errors.Is.
var ErrExists = errors.New("output file already exists")

// CheckTarget verifies that path may be written. With force set it
// always succeeds without touching the filesystem. The check runs
// before any document is built so an existing file is never rebuilt
// against.
func CheckTarget(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("checking output file: %w", err)
}

// WriteFile writes the rendered document, creating parent directories
// as needed. The file is only opened once the full document has been
// rendered in memory, so a failed run never leaves a partial file.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating parent directories: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

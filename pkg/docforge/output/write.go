// Package output owns workspace-scoped file writes.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve validates filename and returns its absolute path under the
// workspace directory. Filenames are relative paths: absolute names and
// names escaping the workspace are rejected. Subdirectories are allowed.
func Resolve(workspace, filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename must not be empty")
	}
	clean := filepath.Clean(filename)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("filename %q escapes the workspace", filename)
	}
	return filepath.Join(workspace, clean), nil
}

// Write writes data to path atomically: the bytes land in a temporary
// sibling file which is renamed into place on success, so a failed write
// never leaves a partial file visible. Parent directories are created as
// needed. Concurrent writes to the same path are last-write-wins.
func Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

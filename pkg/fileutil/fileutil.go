// Package fileutil provides small file helpers: idempotent directory
// creation, touch, whole-file writes, streaming hashing, and a copy routine
// that prefers platform-native tooling.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MakeDirs creates path and any missing parents. An already existing
// directory is not an error.
func MakeDirs(path string) error {
	if err := os.MkdirAll(filepath.Clean(path), 0o750); err != nil {
		return fmt.Errorf("create directories %s: %w", path, err)
	}
	return nil
}

// Touch creates path if missing and updates its modification time. With
// truncate, existing contents are discarded. With createDirs, missing parent
// directories are created first. It returns the touched path.
func Touch(path string, truncate, createDirs bool) (string, error) {
	if createDirs {
		baseDir := filepath.Dir(path)
		if _, err := os.Stat(baseDir); os.IsNotExist(err) {
			if err := MakeDirs(baseDir); err != nil {
				return "", err
			}
		}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if truncate {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o640)
	if err != nil {
		return "", fmt.Errorf("touch %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("touch %s: %w", path, err)
	}

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return "", fmt.Errorf("touch %s: %w", path, err)
	}
	return path, nil
}

// WriteString replaces the contents of path with content.
func WriteString(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o640); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// AppendString appends content to path, creating it if missing.
func AppendString(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o640)
	if err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

package paths

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that CascadeSearch exhausted every ancestor directory
// and any environment fallback without locating the target.
var ErrNotFound = errors.New("paths: target file not found")

// CascadeSearch walks upward from originDir looking for a file named
// fileTarget. When found, it returns the trimmed first line of the file and
// the directory it was found in. When the filesystem root is reached without
// a match and envTarget names a set environment variable, its value is
// returned with an empty directory. Otherwise ErrNotFound.
func CascadeSearch(originDir, fileTarget, envTarget string) (value, dir string, err error) {
	dir, err = filepath.Abs(originDir)
	if err != nil {
		return "", "", fmt.Errorf("resolve origin directory: %w", err)
	}

	for {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", "", fmt.Errorf("read directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.Name() != fileTarget {
				continue
			}
			value, err := firstLine(filepath.Join(dir, fileTarget))
			if err != nil {
				return "", "", err
			}
			return value, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if envTarget != "" {
		if v, ok := os.LookupEnv(envTarget); ok {
			return v, "", nil
		}
	}
	return "", "", ErrNotFound
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return "", nil
}

package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMakeDirsIdempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := MakeDirs(target); err != nil {
		t.Fatalf("MakeDirs: %v", err)
	}
	if err := MakeDirs(target); err != nil {
		t.Fatalf("MakeDirs on existing path: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", target)
	}
}

func TestTouchCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "touched.txt")

	got, err := Touch(path, false, false)
	if err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if got != path {
		t.Fatalf("Touch returned %q, want %q", got, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("touched file missing: %v", err)
	}
}

func TestTouchPreservesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep.txt")
	if err := os.WriteFile(path, []byte("keep me"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Touch(path, false, false); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "keep me" {
		t.Fatalf("contents = %q after touch", data)
	}
}

func TestTouchTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc.txt")
	if err := os.WriteFile(path, []byte("old contents"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Touch(path, true, false); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Fatalf("expected truncated file, got %q", data)
	}
}

func TestTouchCreateDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "f.txt")

	if _, err := Touch(path, false, true); err != nil {
		t.Fatalf("Touch with createDirs: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file missing: %v", err)
	}
}

func TestWriteAndAppendString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	if err := WriteString(path, "first\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := AppendString(path, "second\n"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Fatalf("contents = %q", data)
	}

	// WriteString replaces rather than appends.
	if err := WriteString(path, "reset\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "reset\n" {
		t.Fatalf("contents after rewrite = %q", data)
	}
}

package fileutil

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// hashChunkSize is the read buffer used when streaming a file through a hash.
const hashChunkSize = 256 * 1024

// HashSHA1 computes the SHA-1 digest of the file at path, streaming it in
// fixed-size chunks, and returns the lowercase hex digest.
func HashSHA1(path string) (string, error) {
	return hashFile(path, sha1.New())
}

// ChecksumSHA256 computes the SHA-256 digest of the file at path and returns
// the lowercase hex digest.
func ChecksumSHA256(path string) (string, error) {
	return hashFile(path, sha256.New())
}

func hashFile(path string, h hash.Hash) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

//go:build !windows

package console

import "os"

// Allocate reports ErrUnsupported on non-Windows platforms.
func Allocate() error {
	return ErrUnsupported
}

// Free reports ErrUnsupported on non-Windows platforms.
func Free() error {
	return ErrUnsupported
}

// OpenStream reports ErrUnsupported on non-Windows platforms.
func OpenStream() (*os.File, error) {
	return nil, ErrUnsupported
}

// RedirectStd reports ErrUnsupported on non-Windows platforms.
func RedirectStd() error {
	return ErrUnsupported
}

//go:build windows

package console

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procAllocConsole = kernel32.NewProc("AllocConsole")
	procFreeConsole  = kernel32.NewProc("FreeConsole")
)

// Allocate attaches a new console to the process. If the process already has
// a console, Windows refuses and the existing one is kept; that refusal is
// not surfaced as an error.
func Allocate() error {
	// AllocConsole returns zero both on genuine failure and when a console
	// already exists; either way the process ends up with a console.
	_, _, _ = procAllocConsole.Call()
	return nil
}

// Free detaches the process from its console.
func Free() error {
	r, _, err := procFreeConsole.Call()
	if r == 0 {
		return fmt.Errorf("free console: %w", err)
	}
	return nil
}

// OpenStream opens a writable stream to the attached console.
func OpenStream() (*os.File, error) {
	f, err := os.OpenFile("CONOUT$", os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open console output: %w", err)
	}
	return f, nil
}

// RedirectStd points os.Stdout and os.Stderr at the attached console.
func RedirectStd() error {
	out, err := OpenStream()
	if err != nil {
		return err
	}
	errStream, err := OpenStream()
	if err != nil {
		_ = out.Close()
		return err
	}
	os.Stdout = out
	os.Stderr = errStream
	return nil
}

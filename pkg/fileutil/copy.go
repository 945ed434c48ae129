package fileutil

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"
)

// NativeCopy copies src to dst using platform-native tooling where available:
// cp with reflink support on Linux, xcopy on Windows. Elsewhere, or when the
// native tool fails, it falls back to a portable byte copy. With strict, a
// native-tool failure is returned instead of triggering the fallback.
func NativeCopy(src, dst string, strict bool) error {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = runQuiet("/bin/cp", "--reflink=auto", src, dst)
	case "windows":
		err = runQuiet("xcopy", "/Y", "/Z", src, dst)
	default:
		return copyPortable(src, dst)
	}

	if err == nil {
		return nil
	}
	if strict {
		return fmt.Errorf("native copy %s -> %s: %w", src, dst, err)
	}

	log.Debug().
		Err(err).
		Str("src", src).
		Str("dst", dst).
		Msg("Native copy failed, falling back to portable copy")
	return copyPortable(src, dst)
}

func runQuiet(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

// copyPortable copies src to dst byte by byte, preserving the source file
// mode. A directory dst receives a file named after src's base.
func copyPortable(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	if dstInfo, err := os.Stat(dst); err == nil && dstInfo.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s -> %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	return nil
}

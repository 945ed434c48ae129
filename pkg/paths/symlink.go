package paths

import (
	"os"
	"path/filepath"
)

// Symlink creates a symbolic link at target pointing to src. With force, an
// existing file at target is removed first. With relative, the link text is
// computed relative to target's directory rather than being stored absolute.
//
// It returns true when the link is in place, including when src and target
// already resolve to the same file. False means the operating system refused,
// typically for lack of symlink support or permissions.
func Symlink(src, target string, force, relative bool) bool {
	if resolve(src) == resolve(target) {
		return true
	}

	srcDir, srcName := filepath.Split(src)
	initPath := srcDir
	if relative {
		initPath = Relative(filepath.Dir(target), srcDir)
	}
	linkText := filepath.Join(initPath, srcName)

	if force {
		// Best effort; a missing target is fine.
		_ = os.Remove(target)
	}

	if err := os.Symlink(linkText, target); err != nil {
		return false
	}
	return true
}

// resolve follows symlinks when the path exists and falls back to a cleaned
// absolute path when it does not.
func resolve(p string) string {
	if real, err := filepath.EvalSymlinks(p); err == nil {
		p = real
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

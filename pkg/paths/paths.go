// Package paths provides filesystem path manipulation helpers: relative-path
// computation for symlinking, package/path name conversion, and cascading
// upward file search.
package paths

import (
	"path/filepath"
	"strings"
)

// ToPackage converts a filesystem path to a dotted package-style name.
func ToPackage(path string) string {
	return strings.ReplaceAll(filepath.Clean(path), string(filepath.Separator), ".")
}

// FromPackage converts a dotted package-style name back to a filesystem path.
func FromPackage(pkg string) string {
	return filepath.Clean(strings.ReplaceAll(pkg, ".", string(filepath.Separator)))
}

// SplitAll splits a path into all of its components. A leading root is kept
// as its own component, so "/a/b" yields ["/", "a", "b"]. The path is cleaned
// first.
func SplitAll(p string) []string {
	if p == "" {
		return []string{""}
	}
	p = filepath.Clean(p)

	var parts []string
	for {
		head, tail := filepath.Split(p)
		if head == "" {
			return append([]string{tail}, parts...)
		}
		if tail == "" {
			return append([]string{head}, parts...)
		}
		parts = append([]string{tail}, parts...)
		p = strings.TrimSuffix(head, string(filepath.Separator))
		if p == "" {
			return append([]string{string(filepath.Separator)}, parts...)
		}
	}
}

// CommonPrefix returns the shared leading components of a and b along with
// the remainders of each once they diverge.
func CommonPrefix(a, b []string) (common, restA, restB []string) {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return a[:i], a[i:], b[i:]
}

// Relative returns the relative prefix that connects p1 to p2. In symlink
// terms (ln -s SOURCE TARGET), p1 is the directory holding the link and p2 the
// directory holding the source: the result, placed in p1, reaches p2.
func Relative(p1, p2 string) string {
	_, l1, l2 := CommonPrefix(SplitAll(p1), SplitAll(p2))

	ascend := 0
	for _, part := range l1 {
		if part != "" && part != "." {
			ascend++
		}
	}

	var parts []string
	if ascend > 0 {
		parts = append(parts, strings.Repeat(".."+string(filepath.Separator), ascend))
	}
	parts = append(parts, l2...)
	if len(parts) == 0 {
		return ""
	}
	return filepath.Join(parts...)
}

// Package pathnorm turns a caller-supplied lookup path into the ordered
// list of segments the resolver descends through. It never touches the
// container image; it is pure string handling.
package pathnorm

import "strings"

// ToSlash folds a Windows-dialect path onto POSIX separators: a leading
// drive letter ("C:\...") is dropped, and every backslash becomes a
// forward slash. Paths that are already POSIX are returned unchanged.
func ToSlash(path string) string {
	if len(path) >= 2 && path[1] == ':' {
		path = path[2:]
		path = strings.TrimPrefix(path, `\`)
		path = "/" + path
	}
	if !strings.ContainsRune(path, '\\') {
		return path
	}
	return strings.ReplaceAll(path, `\`, "/")
}

// Segments normalizes path and splits it into its non-empty, non-dot
// path components in order. "." segments are dropped; ".." segments pop
// the previous retained segment when one exists, otherwise they are
// dropped (normalization is always performed against an absolute root,
// so a leading ".." has nothing to climb past).
func Segments(path string) []string {
	slash := ToSlash(path)
	parts := strings.Split(slash, "/")

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, part)
		}
	}
	return segments
}

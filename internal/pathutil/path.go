// Package pathutil provides path manipulation for slash-separated archive paths.
package pathutil

import (
	"iter"
	"strings"
)

// Segments returns the non-empty '/'-separated segments of path in order.
//
// Redundant separators (leading, trailing, or doubled) produce no empty
// segments, so "//a//b/" yields the same sequence as "a/b". The sequence is
// lazy and may be ranged over any number of times.
func Segments(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := path
		for rest != "" {
			var seg string
			if i := strings.IndexByte(rest, '/'); i >= 0 {
				seg, rest = rest[:i], rest[i+1:]
			} else {
				seg, rest = rest, ""
			}
			if seg == "" {
				continue
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// Dir returns the directory part of an entry name: everything before the
// last '/'. If name has no separator, Dir returns root.
func Dir(name, root string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[:i]
	}
	return root
}

// Clean returns path with redundant separators removed: the segments of
// path joined by single slashes, without leading or trailing slashes.
func Clean(path string) string {
	var sb strings.Builder
	for seg := range Segments(path) {
		if sb.Len() > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(seg)
	}
	return sb.String()
}

package project

import (
	"path"
	"sort"
	"strings"
)

// sortReports orders reports by path depth then lexicographically: split
// each path by "/", shorter wins, ties break on the raw string. This
// places ancestor directories' files before descendants', matching
// typical project listing conventions.
func sortReports[T any](reports []T, pathOf func(T) string) {
	sort.SliceStable(reports, func(i, j int) bool {
		return pathLess(pathOf(reports[i]), pathOf(reports[j]))
	})
}

func pathLess(a, b string) bool {
	segmentsA := strings.Split(a, "/")
	segmentsB := strings.Split(b, "/")

	if len(segmentsA) != len(segmentsB) {
		return len(segmentsA) < len(segmentsB)
	}

	return a < b
}

// absolute normalises p into a clean absolute path, anchoring relative
// paths at the root so comparisons between module paths are independent
// of any notion of a process working directory.
func absolute(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return path.Clean(p)
}

// isRelativeReference reports whether p begins with "./" or "../", the
// CommonJS-specific relative-path gate for dependency resolution.
func isRelativeReference(p string) bool {
	return strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../")
}

package catalog

import (
	"path/filepath"
	"strings"
)

// DefaultMarkers are the importance name patterns used when budgeting:
// files whose base name contains one of these review first under a tight
// file-count limit.
var DefaultMarkers = []string{"main", "app", "core", "index"}

// Budget enforces an optional file-count limit. With limit <= 0 or a list
// already within the limit, the input is returned unchanged. Otherwise files
// matching an importance marker are moved ahead of the rest, each partition
// keeping its original relative order, and the result is truncated to limit.
// Deterministic for a given input order.
func Budget(files []FileCandidate, limit int, markers []string) []FileCandidate {
	if limit <= 0 || len(files) <= limit {
		return files
	}
	if len(markers) == 0 {
		markers = DefaultMarkers
	}

	priority := make([]FileCandidate, 0, len(files))
	other := make([]FileCandidate, 0, len(files))
	for _, f := range files {
		if IsPriority(f, markers) {
			priority = append(priority, f)
		} else {
			other = append(other, f)
		}
	}

	ordered := append(priority, other...)
	return ordered[:limit]
}

// IsPriority reports whether the candidate's file name (without extension,
// case-insensitive) contains any importance marker.
func IsPriority(f FileCandidate, markers []string) bool {
	base := filepath.Base(f.RelPath)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	for _, m := range markers {
		if strings.Contains(stem, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

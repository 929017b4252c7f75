package xmldoc

import (
	"path/filepath"
	"strings"
)

// Locate finds XML documentation exports under root matching pattern,
// skipping any path with a segment matching an exclude entry (reference
// assemblies under ref/ carry no documentation). The result is capped at
// maxFiles in glob order; maxFiles <= 0 means unbounded.
func Locate(root, pattern string, exclude []string, maxFiles int) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return nil, err
	}

	var files []string
	for _, m := range matches {
		if hasExcludedSegment(m, exclude) {
			continue
		}
		files = append(files, m)
		if maxFiles > 0 && len(files) >= maxFiles {
			break
		}
	}
	return files, nil
}

func hasExcludedSegment(path string, exclude []string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		for _, e := range exclude {
			if seg == e {
				return true
			}
		}
	}
	return false
}

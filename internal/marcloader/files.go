package marcloader

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// resolveFiles expands a path (single file or directory) into a
// sorted list of MARC XML files, grounded on original_source's
// _get_marc_files.
func resolveFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if strings.HasSuffix(lower, ".xml") || strings.HasSuffix(lower, ".marcxml") {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

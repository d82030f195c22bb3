package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the spreadsheet extensions picked up by Discover, in the
// order they are listed.
var Extensions = []string{".xlsx", ".xls"}

// Discover returns the spreadsheet files directly inside dir. All .xlsx files
// come first, then all .xls files, each group in name order. Subdirectories
// are not searched. Returned paths are absolute, since the spreadsheet host
// resolves relative names against its own working directory.
func Discover(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}
	dir = abs

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, ext := range Extensions {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.ToLower(filepath.Ext(entry.Name())) == ext {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
	}
	return files, nil
}

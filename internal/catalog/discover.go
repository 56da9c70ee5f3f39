package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultPatterns match definitions files below the root.
var DefaultPatterns = []string{"**/*.styled.yaml", "**/*.styled.yml"}

// DiscoverStats counts what Discover saw.
type DiscoverStats struct {
	Matched int
	Ignored int
}

// Discover returns the files below root matching patterns, skipping those
// ignored by root's .gitignore and those inside hidden directories or
// themselves hidden, such as the .styled.yaml config file. Paths are joined
// with root and sorted.
func Discover(root string, patterns []string) ([]string, DiscoverStats, error) {
	var stats DiscoverStats
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	gi, err := loadGitIgnore(root)
	if err != nil {
		return nil, stats, err
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("expand pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] || hidden(match) {
				continue
			}
			seen[match] = true

			info, err := fs.Stat(fsys, match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.Matched++

			if gi != nil && gi.MatchesPath(match) {
				stats.Ignored++
				continue
			}
			files = append(files, filepath.Join(root, filepath.FromSlash(match)))
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

func hidden(match string) bool {
	for _, part := range strings.Split(match, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// loadGitIgnore reads root/.gitignore. A missing file is not an error.
func loadGitIgnore(root string) (*ignore.GitIgnore, error) {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read .gitignore: %w", err)
	}
	return gi, nil
}

// LoadAll loads every file.
func LoadAll(paths []string) ([]*File, error) {
	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		file, err := Load(path)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

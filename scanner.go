package cssengine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultIncludes matches declaration files under the source directory
var DefaultIncludes = []string{"**/*.styles.yaml", "**/*.styles.yml"}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files skipped as partials or gitignored
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads .gitignore from the working directory once. A missing
// file means nothing is ignored.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isPartial reports whether a file is a partial that other files include,
// named with a leading underscore.
func isPartial(path string) bool {
	return strings.HasPrefix(filepath.Base(path), "_")
}

// shouldSkipFile reports whether a matched file is left out of the build.
// Gitignore rules only apply to relative paths, those inside the project.
func shouldSkipFile(path string) bool {
	if isPartial(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		if gi := loadGitIgnore(); gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanFiles expands includes under sourceDir to declaration files, in
// natural order, deduplicated and filtered.
func ScanFiles(sourceDir string, includes []string) ([]string, ScanStats, error) {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range includes {
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	sort.Sort(natural.StringSlice(files))
	return files, stats, nil
}

// GetRelativePath returns a path relative to the working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}

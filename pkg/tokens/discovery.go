package tokens

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gnana997/lucidex/pkg/util"
)

// SourcePatterns are the glob patterns that identify token documents in a directory.
var SourcePatterns = []string{
	"**/*.tokens.json",
	"**/*.tokens.yaml",
	"**/*.tokens.yml",
}

// DefaultExcludes are skipped during discovery.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
}

// IsSourceFile reports whether path names a token document.
func IsSourceFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	for _, suffix := range []string{".tokens.json", ".tokens.yaml", ".tokens.yml"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// SourceKeyForFile maps "border-radius.tokens.json" to "borderRadius".
// The bool is false for files whose stem names no known category.
func SourceKeyForFile(path string) (string, bool) {
	base := filepath.Base(path)
	idx := strings.Index(strings.ToLower(base), ".tokens.")
	if idx <= 0 {
		return "", false
	}
	def, ok := lookupCategoryByStem(base[:idx])
	if !ok {
		return "", false
	}
	return def.Key, true
}

// DiscoverSourceFiles returns the token documents under rootDir, sorted.
func DiscoverSourceFiles(rootDir string) ([]string, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	fsys := os.DirFS(absRoot)
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range SourcePatterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, rel := range matches {
			if excluded(rel) || seen[rel] {
				continue
			}
			seen[rel] = true
			files = append(files, filepath.Join(absRoot, filepath.FromSlash(rel)))
		}
	}

	sort.Strings(files)
	return files, nil
}

// skipDirs are directory names the Watcher never descends into.
var skipDirs = map[string]bool{"node_modules": true, ".git": true}

func excluded(rel string) bool {
	for _, pattern := range DefaultExcludes {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

// LoadSourcesFromDir discovers and reads the token documents under dir.
// Files whose stem names no known category are skipped with a warning; when
// several files map to the same category the last one in sorted order wins.
func LoadSourcesFromDir(dir string, logger *slog.Logger) ([]Source, error) {
	if logger == nil {
		logger = slog.Default()
	}

	files, err := DiscoverSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]Source)
	for _, path := range files {
		key, ok := SourceKeyForFile(path)
		if !ok {
			logger.Warn("ignoring token file with unknown category", "path", path)
			continue
		}
		data, err := util.ReadMapped(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := byKey[key]; dup {
			logger.Warn("duplicate token file for category", "key", key, "replaced", prev.Origin, "path", path)
		}
		byKey[key] = Source{Key: key, Data: data, Origin: path}
	}

	sources := make([]Source, 0, len(byKey))
	for _, def := range knownCategories {
		if src, ok := byKey[def.Key]; ok {
			sources = append(sources, src)
		}
	}

	logger.Info("discovered token sources", "dir", dir, "files", len(files), "sources", len(sources))
	return sources, nil
}

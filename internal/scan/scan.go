package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/envtools/envctl/internal/errors"
	"github.com/envtools/envctl/internal/logging"
)

// Usage is one occurrence of an environment variable in source code.
type Usage struct {
	Key  string // variable name
	File string // path relative to the scan root
	Line int    // 1-indexed line number
}

// Options configures a scan.
type Options struct {
	Root       string   // directory to walk
	Extensions []string // file extensions to inspect, with leading dot
	Exclude    []string // directory names to skip entirely
}

// Result holds every usage found under the root.
type Result struct {
	Usages       []Usage
	FilesScanned int
}

// Keys returns the unique variable names in first-seen order.
func (r *Result) Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, u := range r.Usages {
		if !seen[u.Key] {
			seen[u.Key] = true
			keys = append(keys, u.Key)
		}
	}
	return keys
}

// usagePatterns match the access idioms recognized in source files. The
// capture group is always the variable name.
var usagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`process\.env\.([A-Za-z_][A-Za-z0-9_]*)`),
	regexp.MustCompile(`process\.env\[["']([A-Za-z_][A-Za-z0-9_]*)["']\]`),
	regexp.MustCompile(`import\.meta\.env\.([A-Za-z_][A-Za-z0-9_]*)`),
	regexp.MustCompile(`os\.Getenv\(["']([A-Za-z_][A-Za-z0-9_]*)["']\)`),
}

// Run walks the tree under opts.Root and extracts environment variable
// usages from files matching the extension filter. Each file is processed
// independently; results follow walk order, which is deterministic.
//
// File paths are re-joined against the root with SecureJoin before reading,
// so a symlink inside the tree cannot pull file content from outside it.
func Run(opts Options) (*Result, error) {
	info, err := os.Stat(opts.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound(opts.Root)
		}
		return nil, errors.IOError("stat", opts.Root, err)
	}
	if !info.IsDir() {
		return nil, errors.ValidationError("scan path is not a directory: " + opts.Root)
	}

	extSet := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extSet[ext] = true
	}
	excludeSet := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excludeSet[name] = true
	}

	result := &Result{}

	walkErr := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != opts.Root && excludeSet[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		if !extSet[filepath.Ext(path)] {
			return nil
		}

		rel, err := filepath.Rel(opts.Root, path)
		if err != nil {
			return err
		}

		resolved, err := securejoin.SecureJoin(opts.Root, rel)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(resolved)
		if err != nil {
			// Unreadable files are skipped, not fatal: scanning is
			// best-effort over the whole tree.
			logging.Debug("skipping unreadable file", "path", path, "error", err)
			return nil
		}

		result.FilesScanned++
		result.Usages = append(result.Usages, extractUsages(rel, string(data))...)
		return nil
	})
	if walkErr != nil {
		return nil, errors.IOError("scan", opts.Root, walkErr)
	}

	return result, nil
}

// extractUsages matches every usage pattern against each line of content.
// Duplicate hits of the same key on the same line (a line matched by more
// than one pattern) collapse to one usage.
func extractUsages(file, content string) []Usage {
	var usages []Usage
	for i, line := range strings.Split(content, "\n") {
		seen := make(map[string]bool)
		for _, re := range usagePatterns {
			for _, match := range re.FindAllStringSubmatch(line, -1) {
				key := match[1]
				if seen[key] {
					continue
				}
				seen[key] = true
				usages = append(usages, Usage{Key: key, File: file, Line: i + 1})
			}
		}
	}
	return usages
}

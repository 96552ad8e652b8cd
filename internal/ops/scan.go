package ops

import (
	"github.com/envtools/envctl/internal/envfile"
	"github.com/envtools/envctl/internal/envio"
	"github.com/envtools/envctl/internal/scan"
)

// UnusedKey is an env file key never referenced by the scanned sources.
type UnusedKey struct {
	Key  string
	Line int // line the key is defined on in the env file
}

// ScanResult combines the raw usage scan with an optional cross-reference
// against an env file.
type ScanResult struct {
	Scan    *scan.Result
	EnvPath string      // empty when no cross-reference was requested
	Missing []string    // used in code but not defined in the env file
	Unused  []UnusedKey // defined in the env file but never used
}

// Scan extracts variable usages from the source tree. When envPath is
// non-empty the usages are cross-referenced against that file, reporting
// keys the code uses but the file lacks and keys the file defines but the
// code never reads.
func Scan(opts scan.Options, envPath string) (*ScanResult, error) {
	scanned, err := scan.Run(opts)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{Scan: scanned, EnvPath: envPath}
	if envPath == "" {
		return result, nil
	}

	content, err := envio.ReadFile(envPath)
	if err != nil {
		return nil, err
	}

	mapping := envfile.Parse(content)
	used := make(map[string]bool)
	for _, key := range scanned.Keys() {
		used[key] = true
		if !mapping.Has(key) {
			result.Missing = append(result.Missing, key)
		}
	}

	// First definition line per key, for pointing at unused entries.
	firstLine := make(map[string]int)
	for _, e := range envfile.ParseEntries(content) {
		if _, ok := firstLine[e.Key]; !ok {
			firstLine[e.Key] = e.Line
		}
	}

	for _, key := range mapping.Keys() {
		if !used[key] {
			result.Unused = append(result.Unused, UnusedKey{Key: key, Line: firstLine[key]})
		}
	}

	return result, nil
}

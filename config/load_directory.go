package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// LoadDirectory loads every YAML and JSON file under a directory tree and
// combines them into a single Config. Files are merged in lexicographical
// order; later files override scalar values and append targets.
func LoadDirectory(dirPath string) (*Config, error) {
	matches, err := doublestar.Glob(os.DirFS(dirPath), "**/*.{yml,yaml,json}")
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no yaml or json files found in directory: %s", dirPath)
	}

	var merged *Config
	for _, match := range matches {
		config, err := ParseFile(filepath.Join(dirPath, match))
		if err != nil {
			return nil, fmt.Errorf("failed to parse file %s: %w", match, err)
		}
		if merged == nil {
			merged = config
			continue
		}
		merged = Merge(merged, config)
	}
	return merged, nil
}

// Merge combines two configs, with the second taking precedence for scalar
// values. Targets are concatenated, with later same-named targets replacing
// earlier ones.
func Merge(base, override *Config) *Config {
	result := *base
	if override.Name != "" {
		result.Name = override.Name
	}
	if override.ForceField != "" {
		result.ForceField = override.ForceField
	}
	if override.Logging.Level != "" {
		result.Logging.Level = override.Logging.Level
	}

	byName := make(map[string]int, len(base.Targets))
	result.Targets = make([]*Target, len(base.Targets))
	copy(result.Targets, base.Targets)
	for i, target := range result.Targets {
		byName[target.Name] = i
	}
	for _, target := range override.Targets {
		if i, ok := byName[target.Name]; ok {
			result.Targets[i] = target
			continue
		}
		byName[target.Name] = len(result.Targets)
		result.Targets = append(result.Targets, target)
	}
	return &result
}

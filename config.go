package sitetree

import "strings"

// Strategy names accepted by Config.Strategy.
const (
	StrategyMeta  = "meta"
	StrategyIndex = "index"
)

// DefaultOutput is the artifact location relative to the working directory.
const DefaultOutput = "data/sitetree.json"

// Config holds the resolved settings for a single run. Values come from
// defaults, an optional YAML file, and command line flags, in that order.
type Config struct {
	// Name labels the root node of the exported tree. Defaults to the
	// base name of the absolute scan root.
	Name string `yaml:"name"`

	// Root is the directory to scan. Defaults to the working directory.
	Root string `yaml:"root"`

	// Output is the artifact path. Relative paths resolve against the
	// working directory, not the scan root.
	Output string `yaml:"output"`

	// Strategy selects the classification policy.
	Strategy string `yaml:"strategy"`

	// Extensions lists the file suffixes treated as pages.
	Extensions []string `yaml:"extensions"`

	// Ignore lists directory base names skipped during the walk.
	Ignore []string `yaml:"ignore"`
}

// DefaultConfig returns the configuration used when no file or flag
// overrides it.
func DefaultConfig() *Config {
	return &Config{
		Root:       ".",
		Output:     DefaultOutput,
		Strategy:   StrategyMeta,
		Extensions: []string{".html"},
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.Root == "" {
		return Errorf(EINVALID, "scan root required")
	}
	if c.Output == "" {
		return Errorf(EINVALID, "output path required")
	}
	switch c.Strategy {
	case StrategyMeta, StrategyIndex:
	default:
		return Errorf(EINVALID, "unknown strategy %q", c.Strategy)
	}
	if len(c.Extensions) == 0 {
		return Errorf(EINVALID, "at least one page extension required")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return Errorf(EINVALID, "extension %q must start with a dot", ext)
		}
	}
	return nil
}

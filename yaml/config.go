// Package yaml loads run configuration from YAML files.
package yaml

import (
	"fmt"
	"os"

	"github.com/kwrobel/sitetree"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up at the scan root when no
// explicit path is given.
const DefaultFile = "sitetree.yaml"

// LoadConfig reads a YAML configuration file. Missing files return
// ENOTFOUND so callers can treat the default file as optional. Fields
// absent from the file stay at their zero values; merging with defaults is
// the caller's concern.
func LoadConfig(path string) (*sitetree.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sitetree.Errorf(sitetree.ENOTFOUND, "config file %q not found", path)
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg sitetree.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, sitetree.Errorf(sitetree.EINVALID, "parse config %q: %v", path, err)
	}

	return &cfg, nil
}

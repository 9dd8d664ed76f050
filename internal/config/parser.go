package config

import (
	"os"

	"gopkg.in/yaml.v3"

	pigmenterrors "pigment/pkg/errors"
)

// Load reads a configuration file from disk, validates it, and returns the
// resulting model. The file is decoded over Default so omitted fields keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pigmenterrors.NewParseError(path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, pigmenterrors.NewParseError(path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

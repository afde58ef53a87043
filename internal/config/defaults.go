package config

import (
	_ "embed"
)

//go:embed defaults/blockbash.yaml
var defaultYAML []byte

// GetDefaultYAML returns the embedded default configuration file.
func GetDefaultYAML() []byte {
	return defaultYAML
}

package loaders

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigLoader reads TOML configuration files. Decoding is left to the owner
// of the configuration.
type ConfigLoader struct{}

func (cl *ConfigLoader) Load(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Resource{
		Name:     strings.TrimSuffix(filepath.Base(path), ".toml"),
		FullPath: path,
		Type:     ResourceTypeConfig,
		DataSize: uint64(len(data)),
		Data:     data,
	}, nil
}

func (cl *ConfigLoader) Unload(r *Resource) error {
	r.Data = nil
	r.DataSize = 0
	return nil
}

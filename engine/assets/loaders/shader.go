package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ShaderLoader reads GLSL source text.
type ShaderLoader struct{}

func (sl *ShaderLoader) Load(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("shader source %s is empty", path)
	}
	return &Resource{
		Name:     strings.TrimSuffix(filepath.Base(path), ".glsl"),
		FullPath: path,
		Type:     ResourceTypeShader,
		DataSize: uint64(len(data)),
		Data:     data,
	}, nil
}

func (sl *ShaderLoader) Unload(r *Resource) error {
	r.Data = nil
	r.DataSize = 0
	return nil
}

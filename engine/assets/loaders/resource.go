package loaders

type ResourceType uint8

const (
	ResourceTypeNone ResourceType = iota
	ResourceTypeShader
	ResourceTypeConfig
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeShader:
		return "shader"
	case ResourceTypeConfig:
		return "config"
	default:
		return "none"
	}
}

// Resource is the raw content of an asset file.
type Resource struct {
	Name     string
	FullPath string
	Type     ResourceType
	DataSize uint64
	Data     []byte
}

// Text returns the resource content as a string.
func (r *Resource) Text() string {
	return string(r.Data)
}

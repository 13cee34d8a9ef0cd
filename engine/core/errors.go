package core

import (
	"errors"
)

var (
	ErrNotInitialized  = errors.New("subsystem not initialized")
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrShaderCompile   = errors.New("shader compilation failed")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrPlatformStartup = errors.New("platform startup failed")
	ErrAssetNotFound   = errors.New("asset not found")
)

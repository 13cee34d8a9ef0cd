package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/pong/engine/assets/loaders"
	"github.com/spaghettifunk/pong/engine/core"
)

type AssetInfo struct {
	Path       string
	Type       loaders.ResourceType
	LastLoaded time.Time
}

// AssetManager indexes the asset directory, loads files through the
// registered loaders and watches the disk for changes. Changes are queued by
// the watcher goroutine and dispatched as EVENT_CODE_ASSET_CHANGED events by
// DispatchChanges on the caller's goroutine.
type AssetManager struct {
	root    string
	assets  map[string]AssetInfo
	loaders map[loaders.ResourceType]Loader
	changed map[string]struct{}

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	started  bool
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[loaders.ResourceType]Loader),
		changed:  make(map[string]struct{}),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	// Register loaders
	am.registerLoader(loaders.ResourceTypeShader, &loaders.ShaderLoader{})
	am.registerLoader(loaders.ResourceTypeConfig, &loaders.ConfigLoader{})
	return am, nil
}

func (am *AssetManager) Initialize(assetsDir string) error {
	root, err := filepath.Abs(assetsDir)
	if err != nil {
		return err
	}
	am.root = root

	am.started = true
	go am.start()

	if err := am.addRecursive(root); err != nil {
		return fmt.Errorf("failed to watch assets directory %s: %w", assetsDir, err)
	}
	core.LogDebug("asset manager watching %s", root)
	return nil
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	if !am.started {
		return am.fsnotify.Close()
	}
	close(am.done)
	<-am.stopped
	return nil
}

// Watch indexes a single file outside the assets directory and watches its
// parent directory, so editors that replace the file are still noticed.
func (am *AssetManager) Watch(path string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("%w: %s", core.ErrAssetNotFound, path)
	}
	if err := am.fsnotify.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	am.handleFileEvent(abs)
	return nil
}

// addRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	return am.watchRecursive(name, false)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType loaders.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// AssetPath resolves an asset name to its location under the assets directory.
func (am *AssetManager) AssetPath(name string, resourceType loaders.ResourceType) (string, error) {
	switch resourceType {
	case loaders.ResourceTypeShader:
		return filepath.Join(am.root, "shaders", name+".glsl"), nil
	case loaders.ResourceTypeConfig:
		return filepath.Join(am.root, "config", name+".toml"), nil
	default:
		return "", fmt.Errorf("unknown resource type %d", resourceType)
	}
}

// LoadAsset loads an asset of the assets directory by name.
func (am *AssetManager) LoadAsset(name string, resourceType loaders.ResourceType) (*loaders.Resource, error) {
	path, err := am.AssetPath(name, resourceType)
	if err != nil {
		return nil, err
	}
	return am.LoadPath(path)
}

// LoadPath loads an indexed asset by its path.
func (am *AssetManager) LoadPath(path string) (*loaders.Resource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	asset, exists := am.assets[abs]
	if exists {
		// Update the loaded time
		asset.LastLoaded = time.Now()
		am.assets[abs] = asset
	}
	am.mutex.Unlock()
	if !exists {
		return nil, fmt.Errorf("%w: %s", core.ErrAssetNotFound, path)
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %s", asset.Type)
	}
	return loader.Load(abs)
}

func (am *AssetManager) UnloadAsset(resource *loaders.Resource) error {
	loader, ok := am.loaders[resource.Type]
	if !ok {
		return fmt.Errorf("no loader registered for asset type: %s", resource.Type)
	}
	return loader.Unload(resource)
}

// DispatchChanges fires one EVENT_CODE_ASSET_CHANGED per asset written since
// the previous call, in path order. Returns the number of events fired.
func (am *AssetManager) DispatchChanges() int {
	am.mutex.Lock()
	if len(am.changed) == 0 {
		am.mutex.Unlock()
		return 0
	}
	paths := make([]string, 0, len(am.changed))
	for p := range am.changed {
		paths = append(paths, p)
	}
	am.changed = make(map[string]struct{})
	am.mutex.Unlock()

	sort.Strings(paths)
	for _, p := range paths {
		core.LogDebug("asset changed: %s", p)
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_ASSET_CHANGED,
			Data: p,
		})
	}
	return len(paths)
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name, false); err != nil {
						core.LogWarn("failed to watch %s: %s", e.Name, err)
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if am.handleFileEvent(e.Name) {
					am.markChanged(e.Name)
				}
			}
			// Watches on removed directories are dropped by fsnotify itself.
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", err)

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch list and
// indexes every file found.
func (am *AssetManager) watchRecursive(path string, unWatch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if unWatch {
				return am.fsnotify.Remove(walkPath)
			}
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file. Returns false for files of
// no known asset type.
func (am *AssetManager) handleFileEvent(path string) bool {
	assetType := determineAssetType(path)
	if assetType == loaders.ResourceTypeNone {
		return false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	info, ok := am.assets[path]
	if !ok {
		info = AssetInfo{Path: path, Type: assetType}
	}
	am.assets[path] = info
	return true
}

func (am *AssetManager) markChanged(path string) {
	am.mutex.Lock()
	am.changed[path] = struct{}{}
	am.mutex.Unlock()
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}

func determineAssetType(path string) loaders.ResourceType {
	switch filepath.Ext(path) {
	case ".glsl":
		return loaders.ResourceTypeShader
	case ".toml":
		return loaders.ResourceTypeConfig
	default:
		return loaders.ResourceTypeNone
	}
}

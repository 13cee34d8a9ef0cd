package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/pong/engine/assets/loaders"
	"github.com/spaghettifunk/pong/engine/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestManager(t *testing.T) (*AssetManager, string) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shaders", "rect.vert.glsl"), "#version 410 core\nvoid main() {}\n")
	writeFile(t, filepath.Join(root, "config", "pong.toml"), "[match]\nwin_score = 5\n")
	writeFile(t, filepath.Join(root, "README"), "not an asset")

	am, err := NewAssetManager()
	if err != nil {
		t.Fatalf("new asset manager: %v", err)
	}
	if err := am.Initialize(root); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	t.Cleanup(func() { am.Shutdown() })
	return am, root
}

func TestLoadAsset(t *testing.T) {
	am, root := newTestManager(t)

	shader, err := am.LoadAsset("rect.vert", loaders.ResourceTypeShader)
	if err != nil {
		t.Fatalf("load shader: %v", err)
	}
	if shader.Name != "rect.vert" || shader.Type != loaders.ResourceTypeShader {
		t.Errorf("unexpected shader resource %+v", shader)
	}
	if shader.Text() != "#version 410 core\nvoid main() {}\n" {
		t.Errorf("unexpected shader text %q", shader.Text())
	}

	config, err := am.LoadPath(filepath.Join(root, "config", "pong.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if config.Type != loaders.ResourceTypeConfig || config.DataSize == 0 {
		t.Errorf("unexpected config resource %+v", config)
	}

	if err := am.UnloadAsset(config); err != nil {
		t.Fatalf("unload: %v", err)
	}
	if config.Data != nil {
		t.Error("expected unload to drop the data")
	}
}

func TestLoadAssetMissing(t *testing.T) {
	am, root := newTestManager(t)

	_, err := am.LoadAsset("missing", loaders.ResourceTypeShader)
	if !errors.Is(err, core.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
	_, err = am.LoadPath(filepath.Join(root, "README"))
	if !errors.Is(err, core.ErrAssetNotFound) {
		t.Errorf("expected unknown file types to stay unindexed, got %v", err)
	}
}

func TestDetermineAssetType(t *testing.T) {
	tests := []struct {
		path string
		want loaders.ResourceType
	}{
		{"assets/shaders/rect.frag.glsl", loaders.ResourceTypeShader},
		{"assets/config/pong.toml", loaders.ResourceTypeConfig},
		{"assets/textures/ball.png", loaders.ResourceTypeNone},
	}
	for _, tt := range tests {
		if got := determineAssetType(tt.path); got != tt.want {
			t.Errorf("determineAssetType(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestWriteDispatchesChangeEvent(t *testing.T) {
	core.EventInitialize()
	defer core.EventShutdown()

	am, root := newTestManager(t)
	configPath := filepath.Join(root, "config", "pong.toml")

	var changed []string
	core.EventRegister(core.EVENT_CODE_ASSET_CHANGED, "test", func(ctx core.EventContext, _ any) bool {
		changed = append(changed, ctx.Data.(string))
		return true
	})

	writeFile(t, configPath, "[match]\nwin_score = 7\n")

	deadline := time.Now().Add(5 * time.Second)
	for len(changed) == 0 && time.Now().Before(deadline) {
		am.DispatchChanges()
		time.Sleep(10 * time.Millisecond)
	}
	if len(changed) == 0 {
		t.Fatal("expected a change event after writing the config")
	}
	if changed[0] != configPath {
		t.Errorf("expected %s, got %s", configPath, changed[0])
	}
}

func TestWatchFileOutsideRoot(t *testing.T) {
	am, _ := newTestManager(t)

	external := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, external, "[match]\nwin_score = 3\n")
	if err := am.Watch(external); err != nil {
		t.Fatalf("watch: %v", err)
	}
	res, err := am.LoadPath(external)
	if err != nil {
		t.Fatalf("load watched file: %v", err)
	}
	if res.Text() != "[match]\nwin_score = 3\n" {
		t.Errorf("unexpected content %q", res.Text())
	}

	if err := am.Watch(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, core.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound for a missing file, got %v", err)
	}
}

package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/embedded"
)

func TestLoadGameConfigDefaults(t *testing.T) {
	embedded.Init(nil)

	cfg, err := LoadGameConfig("")
	if err != nil {
		t.Fatalf("LoadGameConfig() error = %v", err)
	}
	if cfg.Window.Title != "Pong" || cfg.Window.TPS != 60 {
		t.Errorf("unexpected defaults: %+v", cfg.Window)
	}
}

func TestLoadGameConfigEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		config.DefaultGameConfigPath: &fstest.MapFile{Data: []byte("window:\n  tps: 30\nball:\n  size: 12\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	cfg, err := LoadGameConfig("")
	if err != nil {
		t.Fatalf("LoadGameConfig() error = %v", err)
	}
	if cfg.Window.TPS != 30 || cfg.Ball.Size != 12 {
		t.Errorf("embedded values not applied: tps=%d size=%v", cfg.Window.TPS, cfg.Ball.Size)
	}
	if cfg.Paddle.Height != 100 {
		t.Errorf("unspecified fields should keep defaults, paddle height = %v", cfg.Paddle.Height)
	}
}

func TestLoadGameConfigEmbeddedMissing(t *testing.T) {
	embedded.Init(fstest.MapFS{})
	t.Cleanup(func() { embedded.Init(nil) })

	if _, err := LoadGameConfig(""); err == nil {
		t.Fatal("LoadGameConfig() should fail when the embedded config is missing")
	}
}

func TestLoadGameConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		wantTPS int
	}{
		{"有效配置", "window:\n  tps: 120\n", "", 120},
		{"无效配置", "window:\n  tps: 0\n", "配置加载失败", 0},
		{"YAML 语法错误", "window: [\n", "配置加载失败", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pong.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadGameConfig(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadGameConfig() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadGameConfig() error = %v", err)
			}
			if cfg.Window.TPS != tt.wantTPS {
				t.Errorf("TPS = %d, want %d", cfg.Window.TPS, tt.wantTPS)
			}
		})
	}
}

func TestLoadGameConfigFileMissing(t *testing.T) {
	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadGameConfig() should fail for a missing file")
	}
}

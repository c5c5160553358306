package game

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("Failed to write test font: %v", err)
	}

	rm := NewResourceManager()
	face, err := rm.LoadFont(path, 36)
	if err != nil {
		t.Fatalf("LoadFont() error: %v", err)
	}
	if face == nil || face.Size != 36 {
		t.Fatalf("LoadFont() returned unexpected face: %+v", face)
	}

	// 第二次加载命中缓存
	again, err := rm.LoadFont(path, 36)
	if err != nil || again != face {
		t.Error("Second LoadFont() should return the cached face")
	}
	if rm.GetFont(path, 36) != face {
		t.Error("GetFont() should return the cached face")
	}
	if rm.GetFont(path, 12) != nil {
		t.Error("GetFont() with another size should return nil")
	}
}

func TestLoadFontErrors(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.ttf")
	if err := os.WriteFile(corrupt, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupt font: %v", err)
	}

	tests := []struct {
		name       string
		path       string
		notExistOK bool
	}{
		{"文件不存在", filepath.Join(dir, "Lexend-Bold.tff"), true},
		{"文件损坏", corrupt, false},
		{"空路径", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := NewResourceManager()
			_, err := rm.LoadFont(tt.path, 36)
			if err == nil {
				t.Fatal("LoadFont() expected error")
			}

			var fontErr *FontLoadError
			if !errors.As(err, &fontErr) {
				t.Fatalf("Expected *FontLoadError, got %T", err)
			}
			if fontErr.Path != tt.path {
				t.Errorf("FontLoadError.Path: got %q, want %q", fontErr.Path, tt.path)
			}
			if tt.notExistOK && !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("Expected wrapped fs.ErrNotExist, got %v", err)
			}
		})
	}
}

// TestLoadFontOrDefaultFallback 自定义字体缺失时静默使用内置字体
func TestLoadFontOrDefaultFallback(t *testing.T) {
	rm := NewResourceManager()

	face, err := rm.LoadFontOrDefault(filepath.Join(t.TempDir(), "missing.ttf"), 36)
	if err != nil {
		t.Fatalf("LoadFontOrDefault() should not surface FontLoadError, got %v", err)
	}
	if face == nil {
		t.Fatal("LoadFontOrDefault() returned nil face")
	}
	if face.Size != 36 {
		t.Errorf("Fallback face size: got %v, want 36", face.Size)
	}

	def, _ := rm.DefaultFont(36)
	if face != def {
		t.Error("Fallback face should be the cached built-in face")
	}
}

func TestLoadFontOrDefaultCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("Failed to write test font: %v", err)
	}

	rm := NewResourceManager()
	face, err := rm.LoadFontOrDefault(path, 24)
	if err != nil {
		t.Fatalf("LoadFontOrDefault() error: %v", err)
	}
	if rm.GetFont(path, 24) != face {
		t.Error("Custom font should be used when it loads")
	}
}

func TestDefaultFontSharesSource(t *testing.T) {
	rm := NewResourceManager()

	small, err := rm.DefaultFont(12)
	if err != nil {
		t.Fatalf("DefaultFont(12) error: %v", err)
	}
	large, err := rm.DefaultFont(48)
	if err != nil {
		t.Fatalf("DefaultFont(48) error: %v", err)
	}

	if small == large {
		t.Error("Different sizes should produce different faces")
	}
	if small.Source != large.Source {
		t.Error("Built-in font source should be parsed once and shared")
	}
}

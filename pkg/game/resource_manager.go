package game

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FontLoadError 自定义字体无法加载
//
// 这是对局中唯一可恢复的错误：LoadFontOrDefault 会捕获它并改用内置字体，
// 不会传递给调用方。
type FontLoadError struct {
	Path string
	Err  error
}

// Error 实现 error 接口
func (e *FontLoadError) Error() string {
	return fmt.Sprintf("failed to load font %s: %v", e.Path, e.Err)
}

// Unwrap 返回底层错误
func (e *FontLoadError) Unwrap() error {
	return e.Err
}

// defaultFontKey 内置字体在缓存中的路径标识
const defaultFontKey = "<goregular>"

// ResourceManager is responsible for loading and caching font faces.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The cache uses a standard Go map;
// the single-threaded game loop needs no synchronization.
//
// Usage:
//
//	rm := NewResourceManager()
//	face, err := rm.LoadFontOrDefault("Lexend-Bold.ttf", 36)
type ResourceManager struct {
	fontFaceCache map[string]*text.GoTextFace // Cache for text faces: "path:size" -> face
	defaultSource *text.GoTextFaceSource      // Parsed built-in font, created on first use
	readFile      func(path string) ([]byte, error)
}

// NewResourceManager creates a ResourceManager that reads fonts from the local filesystem.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[string]*text.GoTextFace),
		readFile:      os.ReadFile,
	}
}

func fontCacheKey(path string, size float64) string {
	return fmt.Sprintf("%s:%.1f", path, size)
}

// LoadFont loads a TrueType/OpenType font from the specified path and creates a text face with the given size.
// The font face is cached for future use with a cache key combining path and size.
//
// Parameters:
//   - path: The file path to the font resource (e.g., "Lexend-Bold.ttf").
//   - size: The font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - A *FontLoadError if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	if cachedFace := rm.GetFont(path, size); cachedFace != nil {
		return cachedFace, nil
	}

	if path == "" {
		return nil, &FontLoadError{Path: path, Err: fmt.Errorf("empty font path")}
	}

	fontData, err := rm.readFile(path)
	if err != nil {
		return nil, &FontLoadError{Path: path, Err: err}
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, &FontLoadError{Path: path, Err: err}
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[fontCacheKey(path, size)] = face

	return face, nil
}

// DefaultFont 返回内置的 Go Regular 字体
//
// 字体数据编译在程序内，解析失败意味着构建本身有问题。
func (rm *ResourceManager) DefaultFont(size float64) (*text.GoTextFace, error) {
	if cachedFace := rm.GetFont(defaultFontKey, size); cachedFace != nil {
		return cachedFace, nil
	}

	if rm.defaultSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to parse built-in font: %w", err)
		}
		rm.defaultSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.defaultSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[fontCacheKey(defaultFontKey, size)] = face

	return face, nil
}

// LoadFontOrDefault 加载自定义字体，失败时静默改用内置字体
//
// 返回的 error 只可能来自内置字体本身，FontLoadError 不会返回给调用方。
func (rm *ResourceManager) LoadFontOrDefault(path string, size float64) (*text.GoTextFace, error) {
	face, err := rm.LoadFont(path, size)
	if err == nil {
		return face, nil
	}

	log.Printf("[ResourceManager] %v, using built-in font", err)
	return rm.DefaultFont(size)
}

// GetFont retrieves a previously loaded font face from the cache.
// If the font has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fontCacheKey(path, size)]
}

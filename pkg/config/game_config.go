package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 是嵌入的默认配置文件路径
const DefaultGameConfigPath = "data/pong.yaml"

// GameConfig 对局配置
//
// 所有值在启动时读取一次，对局期间只读。
// 屏幕尺寸不在此处：它来自显示器，见 game.Session。
//
// 配置文件位置: data/pong.yaml（嵌入），可以用 -config 指定外部文件覆盖
type GameConfig struct {
	Window      WindowConfig      `yaml:"window"`
	Ball        BallConfig        `yaml:"ball"`
	Paddle      PaddleConfig      `yaml:"paddle"`
	Controls    ControlsConfig    `yaml:"controls"`
	CloseButton CloseButtonConfig `yaml:"closeButton"`
	Score       ScoreConfig       `yaml:"score"`
	Colors      ColorsConfig      `yaml:"colors"`
}

// WindowConfig 窗口与帧率配置
type WindowConfig struct {
	Title string `yaml:"title"`

	// TPS 目标帧率（每秒逻辑帧数）
	TPS int `yaml:"tps"`

	// Fullscreen 首次启动时是否全屏；之后以 SettingsManager 保存的值为准
	Fullscreen bool `yaml:"fullscreen"`

	// FallbackWidth/FallbackHeight 无法获取显示器尺寸时使用的屏幕尺寸
	FallbackWidth  int `yaml:"fallbackWidth"`
	FallbackHeight int `yaml:"fallbackHeight"`
}

// BallConfig 球的配置
type BallConfig struct {
	Size   float64 `yaml:"size"`   // 正方形边长（像素）
	SpeedX float64 `yaml:"speedX"` // 初始水平速度（像素/帧），带符号
	SpeedY float64 `yaml:"speedY"` // 初始垂直速度（像素/帧），带符号
}

// PaddleConfig 球拍配置
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`  // 每帧移动距离（像素）
	Margin float64 `yaml:"margin"` // 球拍与左右屏幕边缘的距离
}

// ControlsConfig 按键绑定，值为 ebiten 的按键名（如 "W", "ArrowUp"）
type ControlsConfig struct {
	LeftUp    ebiten.Key `yaml:"leftUp"`
	LeftDown  ebiten.Key `yaml:"leftDown"`
	RightUp   ebiten.Key `yaml:"rightUp"`
	RightDown ebiten.Key `yaml:"rightDown"`
}

// CloseButtonConfig 右上角关闭按钮（叉号）配置
type CloseButtonConfig struct {
	Size      float64 `yaml:"size"`      // 叉号边长
	Margin    float64 `yaml:"margin"`    // 距右边缘和上边缘的距离
	Thickness float64 `yaml:"thickness"` // 线宽
}

// ScoreConfig 比分文字配置
type ScoreConfig struct {
	FontPath string  `yaml:"fontPath"` // 自定义字体路径，加载失败时使用内置字体
	FontSize float64 `yaml:"fontSize"`
	OffsetY  float64 `yaml:"offsetY"` // 距屏幕顶部的距离
}

// ColorsConfig 颜色配置
type ColorsConfig struct {
	Background HexColor `yaml:"background"`
	Foreground HexColor `yaml:"foreground"`
}

// HexColor 以 "#RRGGBB" 或 "#RRGGBBAA" 形式书写的颜色
type HexColor struct {
	color.RGBA
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (c *HexColor) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", string(text))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", string(text), err)
	}

	c.RGBA = color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return nil
}

// MarshalText 实现 encoding.TextMarshaler
func (c HexColor) MarshalText() ([]byte, error) {
	if c.A == 0xff {
		return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
	}
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)), nil
}

// DefaultGameConfig 返回默认配置
//
// 与 data/pong.yaml 保持一致；配置文件中缺省的字段沿用这里的值。
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:          "Pong",
			TPS:            60,
			Fullscreen:     true,
			FallbackWidth:  1280,
			FallbackHeight: 720,
		},
		Ball: BallConfig{
			Size:   20,
			SpeedX: 9,
			SpeedY: 9,
		},
		Paddle: PaddleConfig{
			Width:  15,
			Height: 100,
			Speed:  10,
			Margin: 50,
		},
		Controls: ControlsConfig{
			LeftUp:    ebiten.KeyW,
			LeftDown:  ebiten.KeyS,
			RightUp:   ebiten.KeyArrowUp,
			RightDown: ebiten.KeyArrowDown,
		},
		CloseButton: CloseButtonConfig{
			Size:      40,
			Margin:    10,
			Thickness: 5,
		},
		Score: ScoreConfig{
			FontPath: "Lexend-Bold.ttf",
			FontSize: 36,
			OffsetY:  20,
		},
		Colors: ColorsConfig{
			Background: HexColor{color.RGBA{A: 0xff}},
			Foreground: HexColor{color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		},
	}
}

// ParseGameConfig 解析 YAML 配置数据
//
// 解析结果叠加在默认配置之上，并在返回前完成校验。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从磁盘加载配置文件
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *GameConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 所有尺寸、速度和帧率必须为正；两组按键都必须设置。
func (c *GameConfig) Validate() error {
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be > 0, got %d", c.Window.TPS)
	}
	if c.Window.FallbackWidth <= 0 || c.Window.FallbackHeight <= 0 {
		return fmt.Errorf("window fallback size must be > 0, got %dx%d",
			c.Window.FallbackWidth, c.Window.FallbackHeight)
	}

	positives := []struct {
		name  string
		value float64
	}{
		{"ball.size", c.Ball.Size},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"closeButton.size", c.CloseButton.Size},
		{"closeButton.thickness", c.CloseButton.Thickness},
		{"score.fontSize", c.Score.FontSize},
	}
	for _, p := range positives {
		if !isFinite(p.value) || p.value <= 0 {
			return fmt.Errorf("%s must be finite and > 0, got %.1f", p.name, p.value)
		}
	}

	// 球的位置只由初始位置和速度累加得到，速度有限才能保证位置有限
	if !isFinite(c.Ball.SpeedX) || !isFinite(c.Ball.SpeedY) || c.Ball.SpeedX == 0 || c.Ball.SpeedY == 0 {
		return fmt.Errorf("ball speed components must be finite and non-zero, got (%.1f, %.1f)",
			c.Ball.SpeedX, c.Ball.SpeedY)
	}
	for _, v := range []float64{c.Paddle.Margin, c.CloseButton.Margin, c.Score.OffsetY} {
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("margins and offsets must be finite and >= 0")
		}
	}

	keys := c.Controls
	if keys.LeftUp == keys.LeftDown || keys.RightUp == keys.RightDown {
		return fmt.Errorf("each paddle needs two distinct keys")
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package game

import (
	"log"
	"time"

	"github.com/decker502/pong/pkg/config"
	"github.com/google/uuid"
)

// Session 一次对局的只读上下文
//
// 屏幕尺寸、配置和会话标识在启动时确定，之后不再变化。
// 系统在构造时接收 Session，而不是读取全局变量。
type Session struct {
	// ID 会话标识，仅用于日志
	ID string

	Config *config.GameConfig

	// Width/Height 屏幕尺寸（像素），取自显示器
	Width  float64
	Height float64

	StartedAt time.Time
}

// NewSession 创建对局上下文
//
// 参数：
//   - cfg: 对局配置（已校验）
//   - screenWidth, screenHeight: 显示器尺寸；任一值 <= 0 时使用配置中的后备尺寸
func NewSession(cfg *config.GameConfig, screenWidth, screenHeight int) *Session {
	if screenWidth <= 0 || screenHeight <= 0 {
		log.Printf("[Session] Display size unavailable (%dx%d), using fallback %dx%d",
			screenWidth, screenHeight, cfg.Window.FallbackWidth, cfg.Window.FallbackHeight)
		screenWidth = cfg.Window.FallbackWidth
		screenHeight = cfg.Window.FallbackHeight
	}

	s := &Session{
		ID:        uuid.NewString(),
		Config:    cfg,
		Width:     float64(screenWidth),
		Height:    float64(screenHeight),
		StartedAt: time.Now(),
	}

	log.Printf("[Session %s] Screen %dx%d, %d TPS", s.ID, screenWidth, screenHeight, cfg.Window.TPS)
	return s
}

// ScreenSize 返回整数形式的屏幕尺寸，用于 ebiten Layout
func (s *Session) ScreenSize() (int, int) {
	return int(s.Width), int(s.Height)
}

// Since 返回对局已进行的时长（取整到秒）
func (s *Session) Since() time.Duration {
	return time.Since(s.StartedAt).Round(time.Second)
}

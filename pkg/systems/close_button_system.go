package systems

import (
	"log"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/utils"
)

// CloseButtonSystem 检测关闭按钮是否被点击
//
// 本帧事件批次中的每一个指针按下事件都会与按钮区域比较，
// 不只看最后一个事件。按钮区域取自最近一次绘制时写入的组件。
type CloseButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewCloseButtonSystem 创建关闭按钮系统
func NewCloseButtonSystem(em *ecs.EntityManager) *CloseButtonSystem {
	return &CloseButtonSystem{entityManager: em}
}

// CheckClick 返回本帧是否有指针按下落在关闭按钮内
// 参数:
//   - events: 本帧已经取出的事件批次（不会重新轮询）
func (s *CloseButtonSystem) CheckClick(events []utils.Event) bool {
	rects := s.buttonRects()
	if len(rects) == 0 {
		return false
	}

	for _, ev := range events {
		if ev.Kind != utils.EventPointerDown {
			continue
		}
		for _, rect := range rects {
			if rect.Contains(float64(ev.X), float64(ev.Y)) {
				log.Printf("[CloseButtonSystem] Close button clicked at (%d, %d)", ev.X, ev.Y)
				return true
			}
		}
	}
	return false
}

func (s *CloseButtonSystem) buttonRects() []config.Rect {
	var rects []config.Rect
	for _, id := range ecs.GetEntitiesWith3[*components.CloseButtonComponent, *components.ClickableComponent, *components.PositionComponent](s.entityManager) {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		rects = append(rects, config.Rect{X: pos.X, Y: pos.Y, W: clickable.Width, H: clickable.Height})
	}
	return rects
}

package entities

import (
	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/game"
)

// NewBallEntity 创建球实体
// 参数:
//   - em: EntityManager 实例
//   - session: 对局上下文，提供屏幕尺寸和球的配置
//
// 返回: 创建的实体ID
//
// 球从屏幕中心出发（左上角位于中心点），初始速度取自配置
func NewBallEntity(em *ecs.EntityManager, session *game.Session) ecs.EntityID {
	cfg := session.Config.Ball
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: session.Width / 2,
		Y: session.Height / 2,
	})
	em.AddComponent(id, &components.BallComponent{
		SpeedX: cfg.SpeedX,
		SpeedY: cfg.SpeedY,
		Size:   cfg.Size,
	})

	return id
}

// NewPaddleEntity 创建一块球拍
// 参数:
//   - em: EntityManager 实例
//   - session: 对局上下文
//   - side: 左侧或右侧
//
// 返回: 创建的实体ID
func NewPaddleEntity(em *ecs.EntityManager, session *game.Session, side config.PaddleSide) ecs.EntityID {
	cfg := session.Config
	id := em.CreateEntity()

	upKey, downKey := cfg.Controls.LeftUp, cfg.Controls.LeftDown
	if side == config.SideRight {
		upKey, downKey = cfg.Controls.RightUp, cfg.Controls.RightDown
	}

	em.AddComponent(id, &components.PositionComponent{
		X: cfg.PaddleX(side, session.Width),
		Y: cfg.PaddleStartY(session.Height),
	})
	em.AddComponent(id, &components.PaddleComponent{
		Side:    side,
		Width:   cfg.Paddle.Width,
		Height:  cfg.Paddle.Height,
		Speed:   cfg.Paddle.Speed,
		UpKey:   upKey,
		DownKey: downKey,
	})

	return id
}

// NewCloseButtonEntity 创建右上角的关闭按钮
//
// 点击区域先按布局初始化，第一次绘制之前的点击也能命中。
func NewCloseButtonEntity(em *ecs.EntityManager, session *game.Session) ecs.EntityID {
	cfg := session.Config.CloseButton
	rect := session.Config.CloseButtonRect(session.Width)
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: rect.X, Y: rect.Y})
	em.AddComponent(id, &components.CloseButtonComponent{
		Size:      cfg.Size,
		Margin:    cfg.Margin,
		Thickness: cfg.Thickness,
	})
	em.AddComponent(id, &components.ClickableComponent{
		Width:     rect.W,
		Height:    rect.H,
		IsEnabled: true,
	})

	return id
}

// NewScoreboardEntity 创建计分板，两侧比分从 0 开始
func NewScoreboardEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ScoreComponent{})
	return id
}

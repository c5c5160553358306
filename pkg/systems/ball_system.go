package systems

import (
	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/game"
)

// BallSystem 负责球的运动和重新发球
//
// 只处理上下边界的反弹，左右边界属于得分判定（见 ScoringSystem）。
type BallSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
}

// NewBallSystem 创建球系统
func NewBallSystem(em *ecs.EntityManager, session *game.Session) *BallSystem {
	return &BallSystem{
		entityManager: em,
		session:       session,
	}
}

// Update 推进所有球一帧
func (s *BallSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.BallComponent, *components.PositionComponent](s.entityManager) {
		s.Move(id)
	}
}

// Move 按速度移动球，触碰上下边界时翻转垂直速度
//
// 先移动再检查：y <= 0 或 y + size >= 屏幕高度 时 SpeedY 取反。
// 不做位置修正，球可能在边界外停留一帧。
func (s *BallSystem) Move(id ecs.EntityID) {
	ball, ok := ecs.GetComponent[*components.BallComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	pos.X += ball.SpeedX
	pos.Y += ball.SpeedY

	if pos.Y <= 0 || pos.Y+ball.Size >= s.session.Height {
		ball.SpeedY = -ball.SpeedY
	}
}

// Reset 把球放回屏幕中心并翻转水平速度（换边发球）
//
// 垂直速度保持不变。连续调用两次，位置仍然是屏幕中心。
func (s *BallSystem) Reset(id ecs.EntityID) {
	ball, ok := ecs.GetComponent[*components.BallComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	pos.X = s.session.Width / 2
	pos.Y = s.session.Height / 2
	ball.SpeedX = -ball.SpeedX
}

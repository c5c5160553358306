package systems

import (
	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/utils"
)

// PaddleInputSystem 根据按键状态移动球拍
//
// 每块球拍有独立的上/下两个键。每帧先处理上键再处理下键，
// 两个键同时按住时两次移动依次生效（不是互斥的）。
type PaddleInputSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	input         utils.InputSource
}

// NewPaddleInputSystem 创建球拍输入系统
func NewPaddleInputSystem(em *ecs.EntityManager, session *game.Session, input utils.InputSource) *PaddleInputSystem {
	return &PaddleInputSystem{
		entityManager: em,
		session:       session,
		input:         input,
	}
}

// Update 采样当前按键状态，每块球拍每个方向最多移动一次
func (s *PaddleInputSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PaddleComponent, *components.PositionComponent](s.entityManager) {
		paddle, _ := ecs.GetComponent[*components.PaddleComponent](s.entityManager, id)

		if s.input.IsKeyPressed(paddle.UpKey) {
			s.MoveUp(id)
		}
		if s.input.IsKeyPressed(paddle.DownKey) {
			s.MoveDown(id)
		}
	}
}

// MoveUp 球拍上移一步
//
// 已经贴住上边缘时不移动；剩余距离不足一步时停在边缘。
func (s *PaddleInputSystem) MoveUp(id ecs.EntityID) {
	paddle, pos, ok := s.paddle(id)
	if !ok || pos.Y <= 0 {
		return
	}
	pos.Y -= paddle.Speed
	if pos.Y < 0 {
		pos.Y = 0
	}
}

// MoveDown 球拍下移一步
//
// 已经贴住下边缘时不移动；剩余距离不足一步时停在边缘。
func (s *PaddleInputSystem) MoveDown(id ecs.EntityID) {
	paddle, pos, ok := s.paddle(id)
	if !ok {
		return
	}
	maxY := s.session.Height - paddle.Height
	if pos.Y >= maxY {
		return
	}
	pos.Y += paddle.Speed
	if pos.Y > maxY {
		pos.Y = maxY
	}
}

func (s *PaddleInputSystem) paddle(id ecs.EntityID) (*components.PaddleComponent, *components.PositionComponent, bool) {
	paddle, ok := ecs.GetComponent[*components.PaddleComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	return paddle, pos, true
}

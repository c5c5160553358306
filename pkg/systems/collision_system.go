package systems

import (
	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
)

// CollisionSystem 球与球拍的碰撞检测
//
// 命中时只翻转球的水平速度，不把球推出球拍，球可能与球拍重叠一帧。
//
// 注意：判定只用球左上角的 y 与球拍整个高度范围比较，不是完整的包围盒相交。
// 球的下边缘已经越过球拍底部时仍可能判定命中，这是保留下来的手感，不要在这里改成精确判定。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{entityManager: em}
}

// Update 对每个球依次检测左球拍、右球拍
func (s *CollisionSystem) Update(deltaTime float64) {
	left, right := s.paddlesBySide()

	for _, ballID := range ecs.GetEntitiesWith2[*components.BallComponent, *components.PositionComponent](s.entityManager) {
		ball, _ := ecs.GetComponent[*components.BallComponent](s.entityManager, ballID)
		ballPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, ballID)

		for _, id := range left {
			if s.hitsLeftPaddle(ballPos, id) {
				ball.SpeedX = -ball.SpeedX
			}
		}
		for _, id := range right {
			if s.hitsRightPaddle(ball, ballPos, id) {
				ball.SpeedX = -ball.SpeedX
			}
		}
	}
}

// paddlesBySide 按左右分组返回球拍，保证左侧先于右侧检测
func (s *CollisionSystem) paddlesBySide() (left, right []ecs.EntityID) {
	for _, id := range ecs.GetEntitiesWith2[*components.PaddleComponent, *components.PositionComponent](s.entityManager) {
		paddle, _ := ecs.GetComponent[*components.PaddleComponent](s.entityManager, id)
		if paddle.Side == config.SideLeft {
			left = append(left, id)
		} else {
			right = append(right, id)
		}
	}
	return left, right
}

// hitsLeftPaddle ball.x <= paddle.x + width 且 paddle.y <= ball.y <= paddle.y + height
func (s *CollisionSystem) hitsLeftPaddle(ballPos *components.PositionComponent, paddleID ecs.EntityID) bool {
	paddle, pos, ok := s.paddle(paddleID)
	if !ok {
		return false
	}
	return ballPos.X <= pos.X+paddle.Width && withinPaddleHeight(ballPos.Y, pos.Y, paddle.Height)
}

// hitsRightPaddle ball.x + size >= paddle.x 且 paddle.y <= ball.y <= paddle.y + height
func (s *CollisionSystem) hitsRightPaddle(ball *components.BallComponent, ballPos *components.PositionComponent, paddleID ecs.EntityID) bool {
	paddle, pos, ok := s.paddle(paddleID)
	if !ok {
		return false
	}
	return ballPos.X+ball.Size >= pos.X && withinPaddleHeight(ballPos.Y, pos.Y, paddle.Height)
}

func (s *CollisionSystem) paddle(id ecs.EntityID) (*components.PaddleComponent, *components.PositionComponent, bool) {
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

func withinPaddleHeight(ballY, paddleY, paddleHeight float64) bool {
	return paddleY <= ballY && ballY <= paddleY+paddleHeight
}

package systems

import (
	"log"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/game"
)

// ScoringSystem 判定球是否越过左右边界
//
// 必须在 CollisionSystem 之后运行：同一帧内球先被球拍弹回，
// 仍然会用本帧已经移动后的位置做得分判定。
type ScoringSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	ballSystem    *BallSystem
}

// NewScoringSystem 创建得分系统
// 参数:
//   - em: EntityManager 实例
//   - session: 对局上下文（屏幕宽度）
//   - ballSystem: 得分后用于重新发球
func NewScoringSystem(em *ecs.EntityManager, session *game.Session, ballSystem *BallSystem) *ScoringSystem {
	return &ScoringSystem{
		entityManager: em,
		session:       session,
		ballSystem:    ballSystem,
	}
}

// Update 检查左右边界
//
//   - ball.x <= 0: 右方得一分，重新发球
//   - ball.x + size >= 屏幕宽度: 左方得一分，重新发球（恰好相等也算）
func (s *ScoringSystem) Update(deltaTime float64) {
	score := s.scoreboard()
	if score == nil {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BallComponent, *components.PositionComponent](s.entityManager) {
		ball, _ := ecs.GetComponent[*components.BallComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if pos.X <= 0 {
			score.Right++
			log.Printf("[ScoringSystem] Right scores: %d - %d", score.Left, score.Right)
			s.ballSystem.Reset(id)
		}
		if pos.X+ball.Size >= s.session.Width {
			score.Left++
			log.Printf("[ScoringSystem] Left scores: %d - %d", score.Left, score.Right)
			s.ballSystem.Reset(id)
		}
	}
}

// Score 返回当前比分（左, 右），没有计分板时返回 0, 0
func (s *ScoringSystem) Score() (int, int) {
	score := s.scoreboard()
	if score == nil {
		return 0, 0
	}
	return score.Left, score.Right
}

func (s *ScoringSystem) scoreboard() *components.ScoreComponent {
	ids := ecs.GetEntitiesWith1[*components.ScoreComponent](s.entityManager)
	if len(ids) == 0 {
		return nil
	}
	score, _ := ecs.GetComponent[*components.ScoreComponent](s.entityManager, ids[0])
	return score
}
